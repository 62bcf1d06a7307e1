package ws

import (
	"testing"
	"time"
)

func TestHubBroadcastAndDrop(t *testing.T) {
	h := NewHub()
	go h.Run()

	fast := &Client{hub: h, send: make(chan []byte, 4)}
	slow := &Client{hub: h, send: make(chan []byte)} // never drained
	h.Register <- fast
	h.Register <- slow

	h.Broadcast <- []byte("frame-1")
	select {
	case msg := <-fast.send:
		if string(msg) != "frame-1" {
			t.Fatalf("got %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("fast client never received the frame")
	}

	// The slow client must not stall the hub: a second frame still reaches
	// the fast client.
	h.Broadcast <- []byte("frame-2")
	select {
	case msg := <-fast.send:
		if string(msg) != "frame-2" {
			t.Fatalf("got %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("hub stalled behind a slow client")
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register <- c
	h.Unregister <- c

	select {
	case _, ok := <-c.send:
		if ok {
			t.Fatal("expected closed send channel")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel never closed")
	}
}
