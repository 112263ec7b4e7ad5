package boardtests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/forumlab/board-contract-tests/api"
)

// mockBoard is an in-memory board service implementing enough of the
// contract to run the suite: auth for all three roles, threads, posts,
// comments, and votes. It deliberately does not declare the moderation,
// appeals, attendance, or notifications capabilities, so those scenario
// groups are expected to skip when run against it.

var mockBoardCapabilities = []string{"vote-switching", "comment-threading"}

type mockUser struct {
	id          string
	role        api.Role
	email       string
	password    string
	displayName string
}

type mockVote struct {
	api.Vote
	seq int
}

type mockBoard struct {
	mu       sync.Mutex
	lastID   int
	users    map[string]*mockUser // keyed by role + "|" + email
	tokens   map[string]*mockUser
	threads  map[string]*api.Thread
	posts    map[string]*api.Post
	comments map[string]*api.Comment
	votes    map[string]*mockVote
	seq      map[string]int // creation order of every resource id
}

func newMockBoard() *mockBoard {
	return &mockBoard{
		users:    map[string]*mockUser{},
		tokens:   map[string]*mockUser{},
		threads:  map[string]*api.Thread{},
		posts:    map[string]*api.Post{},
		comments: map[string]*api.Comment{},
		votes:    map[string]*mockVote{},
		seq:      map[string]int{},
	}
}

func (b *mockBoard) nextID(prefix string) string {
	b.lastID++
	id := fmt.Sprintf("%s-%d", prefix, b.lastID)
	b.seq[id] = b.lastID
	return id
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	data, _ := json.Marshal(value)
	_, _ = w.Write(data)
}

func writeMockError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{"code": code, "message": message},
	})
}

func decodeBody(r *http.Request, out interface{}) bool {
	return json.NewDecoder(r.Body).Decode(out) == nil
}

func (b *mockBoard) authenticate(r *http.Request) *mockUser {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}
	return b.tokens[strings.TrimPrefix(header, "Bearer ")]
}

type pageMeta struct {
	api.Pagination
	lo, hi int
}

func paginate(r *http.Request, total int) pageMeta {
	page, limit := 1, 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	pages := (total + limit - 1) / limit
	lo := (page - 1) * limit
	hi := lo + limit
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}
	return pageMeta{
		Pagination: api.Pagination{Current: page, Limit: limit, Records: total, Pages: pages},
		lo:         lo,
		hi:         hi,
	}
}

func (b *mockBoard) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case r.URL.Path == "/":
		switch r.Method {
		case "GET":
			writeJSON(w, 200, api.ServiceInfo{Description: "mock board", Capabilities: mockBoardCapabilities})
		case "DELETE":
			w.WriteHeader(204)
		default:
			w.WriteHeader(405)
		}
	case len(parts) == 3 && parts[0] == "auth":
		b.handleAuth(w, r, api.Role(parts[1]), parts[2])
	case len(parts) == 1 && parts[0] == "threads":
		b.handleThreads(w, r)
	case len(parts) == 2 && parts[0] == "threads":
		b.handleThreadByID(w, r, parts[1])
	case len(parts) == 3 && parts[0] == "threads" && parts[2] == "posts":
		b.handleCreatePost(w, r, parts[1])
	case len(parts) == 1 && parts[0] == "posts":
		b.handlePostIndex(w, r)
	case len(parts) == 2 && parts[0] == "posts":
		b.handlePostByID(w, r, parts[1])
	case len(parts) == 3 && parts[0] == "posts" && parts[2] == "comments":
		b.handleCreateComment(w, r, parts[1])
	case len(parts) == 1 && parts[0] == "comments":
		b.handleCommentIndex(w, r)
	case len(parts) == 2 && parts[0] == "comments":
		b.handleCommentByID(w, r, parts[1])
	case len(parts) == 1 && parts[0] == "votes":
		b.handleVotes(w, r)
	case len(parts) == 2 && parts[0] == "votes":
		b.handleVoteByID(w, r, parts[1])
	default:
		writeMockError(w, 404, "NO_ROUTE", "no such endpoint")
	}
}

func (b *mockBoard) handleAuth(w http.ResponseWriter, r *http.Request, role api.Role, action string) {
	if r.Method != "POST" {
		w.WriteHeader(405)
		return
	}
	if role != api.RoleMember && role != api.RoleModerator && role != api.RoleAdministrator {
		writeMockError(w, 404, "NO_SUCH_ROLE", "unknown role")
		return
	}
	var creds api.Credentials
	if !decodeBody(r, &creds) || creds.Email == "" || creds.Password == "" {
		writeMockError(w, 400, "INVALID_CREDENTIALS_PAYLOAD", "email and password are required")
		return
	}
	key := string(role) + "|" + creds.Email

	switch action {
	case "join":
		if _, exists := b.users[key]; exists {
			writeMockError(w, 409, "IDENTITY_EXISTS", "this identity already joined")
			return
		}
		user := &mockUser{
			id:          b.nextID("u"),
			role:        role,
			email:       creds.Email,
			password:    creds.Password,
			displayName: creds.DisplayName,
		}
		b.users[key] = user
		b.issueSession(w, user)
	case "login":
		user := b.users[key]
		if user == nil || user.password != creds.Password {
			writeMockError(w, 401, "BAD_CREDENTIALS", "invalid email or password")
			return
		}
		b.issueSession(w, user)
	default:
		writeMockError(w, 404, "NO_ROUTE", "no such auth action")
	}
}

func (b *mockBoard) issueSession(w http.ResponseWriter, user *mockUser) {
	token := b.nextID("tok")
	b.tokens[token] = user
	writeJSON(w, 200, api.Session{
		UserID:   user.id,
		Role:     user.role,
		Token:    token,
		IssuedAt: time.Now(),
	})
}

func hasDuplicateTag(tags []string) bool {
	seen := map[string]bool{}
	for _, tag := range tags {
		if seen[tag] {
			return true
		}
		seen[tag] = true
	}
	return false
}

func (b *mockBoard) handleThreads(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		user := b.authenticate(r)
		if user == nil {
			writeMockError(w, 401, "NO_SESSION", "authentication required")
			return
		}
		var req api.ThreadCreateRequest
		if !decodeBody(r, &req) || req.Title == "" {
			writeMockError(w, 400, "INVALID_THREAD", "a title is required")
			return
		}
		if hasDuplicateTag(req.Tags) {
			writeMockError(w, 400, "DUPLICATE_TAG", "tags must be unique")
			return
		}
		now := time.Now()
		thread := &api.Thread{
			ID:        b.nextID("th"),
			AuthorID:  user.id,
			Title:     req.Title,
			Tags:      req.Tags,
			CreatedAt: now,
			UpdatedAt: now,
		}
		b.threads[thread.ID] = thread
		writeJSON(w, 201, thread)
	case "GET":
		var matches []*api.Thread
		for _, thread := range b.threads {
			if thread.DeletedAt != nil {
				continue
			}
			if title := r.URL.Query().Get("title"); title != "" && !strings.Contains(thread.Title, title) {
				continue
			}
			if tag := r.URL.Query().Get("tag"); tag != "" && !containsString(thread.Tags, tag) {
				continue
			}
			matches = append(matches, thread)
		}
		sortThreads(b.seq, matches)
		meta := paginate(r, len(matches))
		data := []api.Thread{}
		for _, thread := range matches[meta.lo:meta.hi] {
			data = append(data, *thread)
		}
		writeJSON(w, 200, api.Page[api.Thread]{Pagination: meta.Pagination, Data: data})
	default:
		w.WriteHeader(405)
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sortThreads(seq map[string]int, items []*api.Thread) {
	sort.Slice(items, func(i, j int) bool { return seq[items[i].ID] < seq[items[j].ID] })
}

func sortPosts(seq map[string]int, items []*api.Post) {
	sort.Slice(items, func(i, j int) bool { return seq[items[i].ID] < seq[items[j].ID] })
}

func sortComments(seq map[string]int, items []*api.Comment) {
	sort.Slice(items, func(i, j int) bool { return seq[items[i].ID] < seq[items[j].ID] })
}

func sortVotes(items []*mockVote) {
	sort.Slice(items, func(i, j int) bool { return items[i].seq < items[j].seq })
}

func (b *mockBoard) handleThreadByID(w http.ResponseWriter, r *http.Request, id string) {
	user := b.authenticate(r)
	thread := b.threads[id]
	if thread == nil || thread.DeletedAt != nil {
		writeMockError(w, 404, "THREAD_NOT_FOUND", "no such thread")
		return
	}
	switch r.Method {
	case "GET":
		writeJSON(w, 200, thread)
	case "PUT":
		if user == nil {
			writeMockError(w, 401, "NO_SESSION", "authentication required")
			return
		}
		if thread.AuthorID != user.id {
			writeMockError(w, 403, "NOT_OWNER", "only the author may update a thread")
			return
		}
		var req api.ThreadUpdateRequest
		if !decodeBody(r, &req) {
			writeMockError(w, 400, "INVALID_THREAD", "malformed update")
			return
		}
		if hasDuplicateTag(req.Tags) {
			writeMockError(w, 400, "DUPLICATE_TAG", "tags must be unique")
			return
		}
		if req.Title != "" {
			thread.Title = req.Title
		}
		if req.Tags != nil {
			thread.Tags = req.Tags
		}
		thread.UpdatedAt = time.Now()
		writeJSON(w, 200, thread)
	case "DELETE":
		if user == nil {
			writeMockError(w, 401, "NO_SESSION", "authentication required")
			return
		}
		if thread.AuthorID != user.id {
			writeMockError(w, 403, "NOT_OWNER", "only the author may erase a thread")
			return
		}
		now := time.Now()
		thread.DeletedAt = &now
		writeJSON(w, 200, thread)
	default:
		w.WriteHeader(405)
	}
}

func (b *mockBoard) handleCreatePost(w http.ResponseWriter, r *http.Request, threadID string) {
	if r.Method != "POST" {
		w.WriteHeader(405)
		return
	}
	user := b.authenticate(r)
	if user == nil {
		writeMockError(w, 401, "NO_SESSION", "authentication required")
		return
	}
	thread := b.threads[threadID]
	if thread == nil || thread.DeletedAt != nil {
		writeMockError(w, 404, "THREAD_NOT_FOUND", "no such thread")
		return
	}
	var req api.PostCreateRequest
	if !decodeBody(r, &req) || req.Title == "" {
		writeMockError(w, 400, "INVALID_POST", "a title is required")
		return
	}
	now := time.Now()
	post := &api.Post{
		ID:        b.nextID("p"),
		ThreadID:  threadID,
		AuthorID:  user.id,
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	b.posts[post.ID] = post
	writeJSON(w, 201, post)
}

func (b *mockBoard) handlePostIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(405)
		return
	}
	var matches []*api.Post
	for _, post := range b.posts {
		if post.DeletedAt != nil {
			continue
		}
		if threadID := r.URL.Query().Get("thread_id"); threadID != "" && post.ThreadID != threadID {
			continue
		}
		matches = append(matches, post)
	}
	sortPosts(b.seq, matches)
	meta := paginate(r, len(matches))
	data := []api.Post{}
	for _, post := range matches[meta.lo:meta.hi] {
		data = append(data, *post)
	}
	writeJSON(w, 200, api.Page[api.Post]{Pagination: meta.Pagination, Data: data})
}

func (b *mockBoard) handlePostByID(w http.ResponseWriter, r *http.Request, id string) {
	user := b.authenticate(r)
	post := b.posts[id]
	if post == nil || post.DeletedAt != nil {
		writeMockError(w, 404, "POST_NOT_FOUND", "no such post")
		return
	}
	switch r.Method {
	case "GET":
		writeJSON(w, 200, post)
	case "PUT":
		if user == nil {
			writeMockError(w, 401, "NO_SESSION", "authentication required")
			return
		}
		if post.AuthorID != user.id {
			writeMockError(w, 403, "NOT_OWNER", "only the author may update a post")
			return
		}
		var req api.PostUpdateRequest
		if !decodeBody(r, &req) {
			writeMockError(w, 400, "INVALID_POST", "malformed update")
			return
		}
		if req.Title != "" {
			post.Title = req.Title
		}
		if req.Body != "" {
			post.Body = req.Body
		}
		post.UpdatedAt = time.Now()
		writeJSON(w, 200, post)
	case "DELETE":
		if user == nil {
			writeMockError(w, 401, "NO_SESSION", "authentication required")
			return
		}
		if post.AuthorID != user.id {
			writeMockError(w, 403, "NOT_OWNER", "only the author may erase a post")
			return
		}
		now := time.Now()
		post.DeletedAt = &now
		writeJSON(w, 200, post)
	default:
		w.WriteHeader(405)
	}
}

func (b *mockBoard) handleCreateComment(w http.ResponseWriter, r *http.Request, postID string) {
	if r.Method != "POST" {
		w.WriteHeader(405)
		return
	}
	user := b.authenticate(r)
	if user == nil {
		writeMockError(w, 401, "NO_SESSION", "authentication required")
		return
	}
	post := b.posts[postID]
	if post == nil || post.DeletedAt != nil {
		writeMockError(w, 404, "POST_NOT_FOUND", "no such post")
		return
	}
	var req api.CommentCreateRequest
	if !decodeBody(r, &req) || req.Body == "" {
		writeMockError(w, 400, "INVALID_COMMENT", "a body is required")
		return
	}
	if req.ParentID != nil {
		parent := b.comments[*req.ParentID]
		if parent == nil || parent.PostID != postID {
			writeMockError(w, 404, "PARENT_NOT_FOUND", "no such parent comment on this post")
			return
		}
	}
	comment := &api.Comment{
		ID:        b.nextID("c"),
		PostID:    postID,
		AuthorID:  user.id,
		ParentID:  req.ParentID,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	b.comments[comment.ID] = comment
	writeJSON(w, 201, comment)
}

func (b *mockBoard) handleCommentIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(405)
		return
	}
	var matches []*api.Comment
	for _, comment := range b.comments {
		if comment.DeletedAt != nil {
			continue
		}
		if postID := r.URL.Query().Get("post_id"); postID != "" && comment.PostID != postID {
			continue
		}
		matches = append(matches, comment)
	}
	sortComments(b.seq, matches)
	meta := paginate(r, len(matches))
	data := []api.Comment{}
	for _, comment := range matches[meta.lo:meta.hi] {
		data = append(data, *comment)
	}
	writeJSON(w, 200, api.Page[api.Comment]{Pagination: meta.Pagination, Data: data})
}

func (b *mockBoard) handleCommentByID(w http.ResponseWriter, r *http.Request, id string) {
	user := b.authenticate(r)
	comment := b.comments[id]
	if comment == nil || comment.DeletedAt != nil {
		writeMockError(w, 404, "COMMENT_NOT_FOUND", "no such comment")
		return
	}
	switch r.Method {
	case "GET":
		writeJSON(w, 200, comment)
	case "PUT":
		if user == nil {
			writeMockError(w, 401, "NO_SESSION", "authentication required")
			return
		}
		if comment.AuthorID != user.id {
			writeMockError(w, 403, "NOT_OWNER", "only the author may edit a comment")
			return
		}
		var req api.CommentUpdateRequest
		if !decodeBody(r, &req) || req.Body == "" {
			writeMockError(w, 400, "INVALID_COMMENT", "a body is required")
			return
		}
		comment.Body = req.Body
		writeJSON(w, 200, comment)
	case "DELETE":
		if user == nil {
			writeMockError(w, 401, "NO_SESSION", "authentication required")
			return
		}
		if comment.AuthorID != user.id {
			writeMockError(w, 403, "NOT_OWNER", "only the author may erase a comment")
			return
		}
		now := time.Now()
		comment.DeletedAt = &now
		writeJSON(w, 200, comment)
	default:
		w.WriteHeader(405)
	}
}

func (b *mockBoard) targetExists(targetType api.TargetType, targetID string) bool {
	switch targetType {
	case api.TargetPost:
		post := b.posts[targetID]
		return post != nil && post.DeletedAt == nil
	case api.TargetComment:
		comment := b.comments[targetID]
		return comment != nil && comment.DeletedAt == nil
	}
	return false
}

func (b *mockBoard) handleVotes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		user := b.authenticate(r)
		if user == nil {
			writeMockError(w, 401, "NO_SESSION", "authentication required")
			return
		}
		var req api.VoteCreateRequest
		if !decodeBody(r, &req) || (req.Value != api.VoteUp && req.Value != api.VoteDown) {
			writeMockError(w, 400, "INVALID_VOTE", "value must be up or down")
			return
		}
		if !b.targetExists(req.TargetType, req.TargetID) {
			writeMockError(w, 404, "TARGET_NOT_FOUND", "no such vote target")
			return
		}
		for _, existing := range b.votes {
			if existing.VoterID == user.id && existing.TargetType == req.TargetType && existing.TargetID == req.TargetID {
				if existing.Value == req.Value {
					writeMockError(w, 409, "DUPLICATE_VOTE", "already voted this way on this target")
					return
				}
				existing.Value = req.Value
				writeJSON(w, 200, existing.Vote)
				return
			}
		}
		vote := &mockVote{Vote: api.Vote{
			ID:         b.nextID("v"),
			VoterID:    user.id,
			TargetType: req.TargetType,
			TargetID:   req.TargetID,
			Value:      req.Value,
			CreatedAt:  time.Now(),
		}}
		vote.seq = b.seq[vote.ID]
		b.votes[vote.ID] = vote
		writeJSON(w, 201, vote.Vote)
	case "GET":
		var matches []*mockVote
		for _, vote := range b.votes {
			if tt := r.URL.Query().Get("target_type"); tt != "" && string(vote.TargetType) != tt {
				continue
			}
			if tid := r.URL.Query().Get("target_id"); tid != "" && vote.TargetID != tid {
				continue
			}
			matches = append(matches, vote)
		}
		sortVotes(matches)
		meta := paginate(r, len(matches))
		data := []api.Vote{}
		for _, vote := range matches[meta.lo:meta.hi] {
			data = append(data, vote.Vote)
		}
		writeJSON(w, 200, api.Page[api.Vote]{Pagination: meta.Pagination, Data: data})
	default:
		w.WriteHeader(405)
	}
}

func (b *mockBoard) handleVoteByID(w http.ResponseWriter, r *http.Request, id string) {
	user := b.authenticate(r)
	vote := b.votes[id]
	if vote == nil {
		writeMockError(w, 404, "VOTE_NOT_FOUND", "no such vote")
		return
	}
	switch r.Method {
	case "GET":
		writeJSON(w, 200, vote.Vote)
	case "DELETE":
		if user == nil {
			writeMockError(w, 401, "NO_SESSION", "authentication required")
			return
		}
		if vote.VoterID != user.id {
			writeMockError(w, 403, "NOT_VOTER", "only the voter may retract a vote")
			return
		}
		delete(b.votes, id)
		w.WriteHeader(204)
	default:
		w.WriteHeader(405)
	}
}
