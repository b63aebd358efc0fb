package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestToast_ShowThenAutoHide(t *testing.T) {
	defer goleak.VerifyNone(t)

	toast := NewToast()
	toast.Show("Bookmarked", 50*time.Millisecond)
	assert.Equal(t, "Bookmarked", toast.Message())
	assert.True(t, toast.Visible())

	select {
	case <-toast.Expired():
	case <-time.After(time.Second):
		t.Fatal("toast never expired")
	}
	assert.False(t, toast.Visible())
}

func TestToast_NewShowPreemptsPendingHide(t *testing.T) {
	defer goleak.VerifyNone(t)

	toast := NewToast()
	toast.Show("Bookmarked", 200*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	toast.Show("Removed", 200*time.Millisecond)

	// Past the first toast's would-be expiry: only the second message
	// may be visible, and the first must never reappear.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "Removed", toast.Message())

	select {
	case <-toast.Expired():
	case <-time.After(time.Second):
		t.Fatal("second toast never expired")
	}
	assert.Empty(t, toast.Message())
}

func TestToast_HideCancelsPendingTimer(t *testing.T) {
	defer goleak.VerifyNone(t)

	toast := NewToast()
	toast.Show("Bookmarked", 50*time.Millisecond)
	toast.Hide()
	assert.False(t, toast.Visible())

	// The cancelled timer must not deliver a late expiry.
	select {
	case <-toast.Expired():
		t.Fatal("expiry delivered after Hide")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestToast_RapidShowsKeepLastMessage(t *testing.T) {
	defer goleak.VerifyNone(t)

	toast := NewToast()
	for _, msg := range []string{"one", "two", "three", "four"} {
		toast.Show(msg, 40*time.Millisecond)
	}
	assert.Equal(t, "four", toast.Message())

	select {
	case <-toast.Expired():
	case <-time.After(time.Second):
		t.Fatal("toast never expired")
	}
	assert.False(t, toast.Visible())
}
