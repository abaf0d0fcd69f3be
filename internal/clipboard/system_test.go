package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ranCommand struct {
	name  string
	args  []string
	stdin string
}

func fakeDocument(installed map[string]bool, runErr error) (*CommandDocument, *[]ranCommand) {
	var ran []ranCommand
	d := &CommandDocument{
		commands: commandsFor("linux"),
		lookPath: func(file string) (string, error) {
			if installed[file] {
				return "/usr/bin/" + file, nil
			}
			return "", exec.ErrNotFound
		},
		run: func(_ context.Context, name string, args []string, stdin string) error {
			ran = append(ran, ranCommand{name, args, stdin})
			return runErr
		},
	}
	return d, &ran
}

func TestCommandDocument_Copy(t *testing.T) {
	ctx := context.Background()
	d, ran := fakeDocument(map[string]bool{"xclip": true, "xsel": true}, nil)

	c := NewCopier(Options{Document: d})
	var copied string
	c.SetCallback(func(text string) { copied = text })

	require.True(t, c.Copy(ctx, "https://x.test"))
	assert.Equal(t, "https://x.test", copied)
	require.Len(t, *ran, 1)
	assert.Equal(t, ranCommand{"xclip", []string{"-selection", "clipboard"}, "https://x.test"}, (*ran)[0])

	ok, err := d.ExecCopy(ctx)
	assert.False(t, ok)
	assert.Error(t, err, "selection is cleared when the element is removed")
}

func TestCommandDocument_NoUtility(t *testing.T) {
	d, ran := fakeDocument(nil, nil)

	el, err := d.CreateHiddenElement(context.Background(), "x")
	require.NoError(t, err)
	require.NoError(t, el.SelectAll(context.Background()))

	ok, err := d.ExecCopy(context.Background())
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrNoCopyMechanism)
	assert.Empty(t, *ran)
}

func TestCommandDocument_RunError(t *testing.T) {
	d, _ := fakeDocument(map[string]bool{"wl-copy": true}, errors.New("no display"))

	assert.False(t, NewCopier(Options{Document: d}).Copy(context.Background(), "x"))
}

func TestCommandDocument_RemoveKeepsOtherSelection(t *testing.T) {
	ctx := context.Background()
	d, ran := fakeDocument(map[string]bool{"pbcopy": true}, nil)
	d.commands = commandsFor("darwin")

	first, err := d.CreateHiddenElement(ctx, "first")
	require.NoError(t, err)
	second, err := d.CreateHiddenElement(ctx, "second")
	require.NoError(t, err)

	require.NoError(t, first.SelectAll(ctx))
	require.NoError(t, second.SelectAll(ctx))
	require.NoError(t, first.Remove(ctx))

	ok, err := d.ExecCopy(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, *ran, 1)
	assert.Equal(t, "second", (*ran)[0].stdin)

	require.NoError(t, second.Remove(ctx))
	_, err = d.ExecCopy(ctx)
	assert.Error(t, err)
}

func TestCommandDocument_ConcurrentCopies(t *testing.T) {
	var mu sync.Mutex
	var piped []string
	d := &CommandDocument{
		commands: commandsFor("darwin"),
		lookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
		run: func(_ context.Context, _ string, _ []string, stdin string) error {
			time.Sleep(time.Millisecond)
			mu.Lock()
			piped = append(piped, stdin)
			mu.Unlock()
			return nil
		},
	}

	c := NewCopier(Options{Document: d})
	var notified []string
	c.SetCallback(func(text string) {
		mu.Lock()
		notified = append(notified, text)
		mu.Unlock()
	})

	const n = 16
	want := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		want[i] = fmt.Sprintf("https://x.test/%d", i)
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			assert.True(t, c.Copy(context.Background(), text))
		}(want[i])
	}
	wg.Wait()

	assert.ElementsMatch(t, want, piped, "every copy pipes its own text")
	assert.ElementsMatch(t, want, notified)
}

func TestCommandsFor(t *testing.T) {
	assert.Equal(t, [][]string{{"pbcopy"}}, commandsFor("darwin"))
	assert.Equal(t, [][]string{{"clip"}}, commandsFor("windows"))
	assert.Len(t, commandsFor("linux"), 3)
}
