package boardtests

import (
	"fmt"
	"math/rand"

	"github.com/forumlab/board-contract-tests/api"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixture builders create the remote resources a scenario depends on, in
// dependency order: actor before thread, thread before post, post before
// comment. They fail the test immediately on any error; fixtures are meant
// to succeed deterministically against a freshly seeded service, so there is
// nothing to retry.

var loremWords = []string{
	"ambient", "brisk", "cedar", "drift", "ember", "fjord", "glint",
	"harbor", "inlet", "juniper", "krill", "lattice", "meridian",
	"nocturne", "orchard", "pumice", "quill", "rookery", "saffron",
	"thicket", "umber", "vesper", "willow", "yonder", "zephyr",
}

func randomWords(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			s += " "
		}
		s += loremWords[rand.Intn(len(loremWords))]
	}
	return s
}

func randomCredentials() api.Credentials {
	tag := uuid.NewString()
	return api.Credentials{
		Email:       fmt.Sprintf("actor-%s@contract-tests.invalid", tag),
		Password:    "pw-" + uuid.NewString(),
		DisplayName: "actor-" + tag[:8],
	}
}

func randomTitle() string {
	return randomWords(2+rand.Intn(4)) + " " + uuid.NewString()[:8]
}

func randomBody() string {
	return randomWords(5 + rand.Intn(20))
}

func randomTag() string {
	return loremWords[rand.Intn(len(loremWords))] + "-" + uuid.NewString()[:8]
}

// MissingID returns a well-formed resource ID that is guaranteed never to
// have been issued by the service, for not-found scenarios.
func MissingID() string {
	return uuid.NewString()
}

// CreateThread creates a thread owned by the given actor and erases it again
// when the test ends, so a long run does not accumulate live fixtures. A nil
// overrides uses a constrained-random payload.
func (t *T) CreateThread(owner *Actor, overrides *api.ThreadCreateRequest) api.Thread {
	req := api.ThreadCreateRequest{Title: randomTitle(), Tags: []string{randomTag()}}
	if overrides != nil {
		req = *overrides
	}
	thread, err := t.env.client.CreateThread(t.env.ctx, owner.Session, req)
	require.NoError(t, err, "could not create prerequisite thread")
	t.Defer(func() {
		// The test itself may already have erased it.
		_, _ = t.env.client.EraseThread(t.env.ctx, owner.Session, thread.ID)
	})
	t.Debug("fixture thread %s (%q)", thread.ID, thread.Title)
	return thread
}

// CreatePost creates a post in the given thread, owned by the given actor.
func (t *T) CreatePost(owner *Actor, thread api.Thread, overrides *api.PostCreateRequest) api.Post {
	req := api.PostCreateRequest{Title: randomTitle(), Body: randomBody()}
	if overrides != nil {
		req = *overrides
	}
	post, err := t.env.client.CreatePost(t.env.ctx, owner.Session, thread.ID, req)
	require.NoError(t, err, "could not create prerequisite post")
	t.Debug("fixture post %s in thread %s", post.ID, thread.ID)
	return post
}

// CreateComment creates a comment on the given post, owned by the given
// actor.
func (t *T) CreateComment(owner *Actor, post api.Post, overrides *api.CommentCreateRequest) api.Comment {
	req := api.CommentCreateRequest{Body: randomBody()}
	if overrides != nil {
		req = *overrides
	}
	comment, err := t.env.client.CreateComment(t.env.ctx, owner.Session, post.ID, req)
	require.NoError(t, err, "could not create prerequisite comment")
	t.Debug("fixture comment %s on post %s", comment.ID, post.ID)
	return comment
}

// CreatePostedThread is the common thread-plus-post prefix of many
// scenarios: a new member owning a fresh thread with one post in it.
func (t *T) CreatePostedThread() (*Actor, api.Thread, api.Post) {
	owner := t.RegisterMember()
	thread := t.CreateThread(owner, nil)
	post := t.CreatePost(owner, thread, nil)
	return owner, thread, post
}
