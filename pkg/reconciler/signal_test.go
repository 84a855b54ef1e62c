package reconciler

import (
	"context"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/hwinvd/pkg/logger"
)

func TestSignalGateway_FatalSignal(t *testing.T) {
	stop := NewStopSignal()
	gateway := NewSignalGateway(stop, logger.NewTestLogger())

	gateway.OnSignal(syscall.SIGINT)

	assert.True(t, stop.Stopped())
	assert.Equal(t, 128+int(syscall.SIGINT), gateway.ExitCode())
}

func TestSignalGateway_TermExitCode(t *testing.T) {
	stop := NewStopSignal()
	gateway := NewSignalGateway(stop, logger.NewTestLogger())

	gateway.OnSignal(syscall.SIGTERM)

	assert.Equal(t, 143, gateway.ExitCode())
}

func TestSignalGateway_BenignSignalIgnored(t *testing.T) {
	stop := NewStopSignal()
	gateway := NewSignalGateway(stop, logger.NewTestLogger())

	gateway.OnSignal(syscall.SIGHUP)
	gateway.OnSignal(syscall.SIGUSR1)

	assert.False(t, stop.Stopped())
	assert.Zero(t, gateway.ExitCode())
}

func TestSignalGateway_UnhandledSignalIgnored(t *testing.T) {
	stop := NewStopSignal()
	gateway := NewSignalGateway(stop, logger.NewTestLogger())

	gateway.OnSignal(syscall.SIGWINCH)

	assert.False(t, stop.Stopped())
	assert.Zero(t, gateway.ExitCode())
}

func TestSignalGateway_Watch(t *testing.T) {
	stop := NewStopSignal()
	gateway := NewSignalGateway(stop, logger.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	gateway.Watch(ctx, ch)

	ch <- syscall.SIGTERM

	select {
	case <-stop.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not route the fatal signal to the stop flag")
	}

	assert.Equal(t, 143, gateway.ExitCode())
}

func TestStopSignal_SetIsIdempotent(t *testing.T) {
	stop := NewStopSignal()

	require.False(t, stop.Stopped())

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			stop.Set()
		}()
	}

	wg.Wait()

	assert.True(t, stop.Stopped())

	select {
	case <-stop.Done():
	default:
		t.Fatal("Done channel should be closed after Set")
	}
}
