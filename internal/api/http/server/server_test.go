package server

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_Address(t *testing.T) {
	s := NewHTTPServer(echo.New(), ":0")
	assert.Equal(t, ":0", s.Address())
}

func TestHTTPServer_StartStop(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HideBanner = true
	s := NewHTTPServer(e, "127.0.0.1:0")

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}
