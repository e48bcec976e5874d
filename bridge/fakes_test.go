package bridge

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// testLogger returns a JSON logger writing into buf so tests can count
// emitted entries by level.
func testLogger(buf *bytes.Buffer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "test",
		Output:     buf,
		Level:      hclog.Debug,
		JSONFormat: true,
	})
}

func countLevel(buf *bytes.Buffer, level string) int {
	return strings.Count(buf.String(), `"@level":"`+level+`"`)
}

type fakeSession struct {
	mu    sync.Mutex
	token string
	err   error
	calls int
}

func (s *fakeSession) GetToken(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

// fakeClient is a scriptable stand-in for the vendor global.
type fakeClient struct {
	mu       sync.Mutex
	loaded   bool
	session  Session
	listener func()
	unsubs   int
}

func (c *fakeClient) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

func (c *fakeClient) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *fakeClient) AddListener(cb func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = cb
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.listener = nil
		c.unsubs++
	}
}

func (c *fakeClient) setLoaded(loaded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = loaded
}

func (c *fakeClient) setSession(s Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
}

func (c *fakeClient) unsubscribeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unsubs
}

// notify fires the subscribed listener synchronously, as the vendor does on
// a session change.
func (c *fakeClient) notify() {
	c.mu.Lock()
	cb := c.listener
	c.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func lookupOf(c Client) Lookup {
	return func() Client { return c }
}

func lookupNothing() Lookup {
	return func() Client { return nil }
}
