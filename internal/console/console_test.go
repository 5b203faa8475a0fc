package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(received *[]string) CommandHandler {
	return func(command string) string {
		*received = append(*received, command)
		return "ok " + command
	}
}

func TestRun_DispatchesUntilEOF(t *testing.T) {
	var got []string
	var out bytes.Buffer

	err := Run(context.Background(), strings.NewReader("add Medic\n\n  status  \n"), &out, echo(&got), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"add Medic", "status"}, got)
	assert.Contains(t, out.String(), "ok add Medic\n")
	assert.Contains(t, out.String(), "ok status\n")
	assert.True(t, strings.HasPrefix(out.String(), Prompt))
}

func TestRun_QuitStops(t *testing.T) {
	var got []string
	err := Run(context.Background(), strings.NewReader("team\nQUIT\npool\n"), &bytes.Buffer{}, echo(&got), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"team"}, got)
}

func TestRun_EmptyReplyWritesNothing(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader("noop\n"), &out, func(string) string { return "" }, nil)
	require.NoError(t, err)
	assert.Equal(t, Prompt+Prompt, out.String())
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var got []string
	err := Run(ctx, strings.NewReader("status\n"), &bytes.Buffer{}, echo(&got), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	var (
		mu  sync.Mutex
		got []string
	)
	handler := func(command string) string {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, command)
		return "ok"
	}

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- Run(ctx, pr, io.Discard, handler, nil)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// A line typed after cancellation must not reach the handler.
	_, err := io.WriteString(pw, "add Medic\n")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, got)
}
