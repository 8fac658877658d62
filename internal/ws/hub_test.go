package ws

import (
	"testing"
	"time"
)

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d clients, got %d", want, h.ClientCount())
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for delivery")
		return nil
	}
}

func TestHub_DeliversToMatchingStudentOnly(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	alice := &Client{hub: h, send: make(chan []byte, 4), studentID: "alice"}
	bob := &Client{hub: h, send: make(chan []byte, 4), studentID: "bob"}
	h.Register(alice)
	h.Register(bob)
	waitForClients(t, h, 2)

	h.Deliver("alice", []byte(`{"who":"alice"}`))

	if got := string(receive(t, alice)); got != `{"who":"alice"}` {
		t.Fatalf("unexpected payload %q", got)
	}
	select {
	case msg := <-bob.send:
		t.Fatalf("bob should not receive alice's event, got %q", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_EmptySubscriptionSeesEverything(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	monitor := &Client{hub: h, send: make(chan []byte, 4), studentID: ""}
	h.Register(monitor)
	waitForClients(t, h, 1)

	h.Deliver("alice", []byte(`1`))
	h.Deliver("bob", []byte(`2`))

	if got := string(receive(t, monitor)); got != `1` {
		t.Fatalf("unexpected first payload %q", got)
	}
	if got := string(receive(t, monitor)); got != `2` {
		t.Fatalf("unexpected second payload %q", got)
	}
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	h := NewHub(nil)
	go h.Run()

	c := &Client{hub: h, send: make(chan []byte, 4), studentID: "x"}
	h.Register(c)
	waitForClients(t, h, 1)

	h.Unregister(c)
	waitForClients(t, h, 0)

	if _, open := <-c.send; open {
		t.Fatalf("expected send channel closed after unregister")
	}
}
