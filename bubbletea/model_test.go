package bubbletea_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/solace-dev/solace"
	bt "github.com/solace-dev/solace/bubbletea"
	"github.com/solace-dev/solace/cache"
	"github.com/solace-dev/solace/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &mock.Backend{})
	assert.False(t, h.model.Sending())
	assert.False(t, h.model.MoodFormOpen())
	assert.NoError(t, h.model.Err())
}

func TestModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("window size initializes viewport", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		assert.Equal(t, 80, h.model.Viewport.Width)
		assert.Equal(t, 20, h.model.Viewport.Height) // 24 - 1 - 1 - 2
		assert.NotEmpty(t, h.model.View())
	})

	t.Run("session start seeds the welcome message", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		h.startSession(t)

		assert.Contains(t, h.model.Viewport.View(), "Solace")
		assert.NoError(t, h.model.Err())
	})

	t.Run("session start failure is shown", func(t *testing.T) {
		t.Parallel()

		backend := &mock.Backend{
			CreateChatSessionFn: func(ctx context.Context) (uint64, error) {
				return 0, errors.New("service unavailable")
			},
		}
		h := newHarness(t, backend)
		h.initModel(t)
		h.startSession(t)

		require.Error(t, h.model.Err())
		assert.Contains(t, h.model.View(), "Error:")
	})

	t.Run("enter sends and renders the reply", func(t *testing.T) {
		t.Parallel()

		backend := &mock.Backend{
			SendChatMessageFn: func(ctx context.Context, id uint64, text string) (string, error) {
				assert.Equal(t, "rough day", text)
				return "That sounds hard. Want to talk about it?", nil
			},
		}
		h := newHarness(t, backend)
		h.initModel(t)
		h.startSession(t)

		h.typeText(t, "rough day")
		h.updateAndRun(t, tea.KeyMsg{Type: tea.KeyEnter})

		assert.False(t, h.model.Sending())
		content := h.model.Viewport.View()
		assert.Contains(t, content, "rough day")
		assert.Contains(t, content, "That sounds hard.")
	})

	t.Run("enter with empty input does nothing", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		h.startSession(t)

		cmd := h.update(t, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd)
		assert.False(t, h.model.Sending())
	})

	t.Run("enter while sending is ignored", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		h.startSession(t)

		h.typeText(t, "first")
		cmd := h.update(t, tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		assert.True(t, h.model.Sending())

		// A second enter before the send resolves produces no command.
		assert.Nil(t, h.update(t, tea.KeyMsg{Type: tea.KeyEnter}))
	})

	t.Run("failed send surfaces the fallback reply", func(t *testing.T) {
		t.Parallel()

		backend := &mock.Backend{
			SendChatMessageFn: func(ctx context.Context, id uint64, text string) (string, error) {
				return "", errors.New("boom")
			},
		}
		h := newHarness(t, backend)
		h.initModel(t)
		h.startSession(t)

		h.typeText(t, "hello")
		h.updateAndRun(t, tea.KeyMsg{Type: tea.KeyEnter})

		require.Error(t, h.model.Err())
		assert.Contains(t, h.model.Viewport.View(), "trouble responding")
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		cmd := h.update(t, tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit)
	})
}

func TestModel_CrisisOverlay(t *testing.T) {
	t.Parallel()

	t.Run("crisis message shows the overlay", func(t *testing.T) {
		t.Parallel()

		backend := &mock.Backend{
			SendChatMessageFn: func(ctx context.Context, id uint64, text string) (string, error) {
				return "Please consider reaching out for support.", nil
			},
		}
		h := newHarness(t, backend)
		h.initModel(t)
		h.startSession(t)

		h.typeText(t, "I want to die")
		h.updateAndRun(t, tea.KeyMsg{Type: tea.KeyEnter})

		require.True(t, h.monitor.Visible())
		view := h.model.View()
		assert.Contains(t, view, "988")
		assert.Contains(t, view, "You are not alone.")
	})

	t.Run("esc dismisses the overlay", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		h.startSession(t)
		h.monitor.SignalMessage()
		require.True(t, h.monitor.Visible())

		h.update(t, tea.KeyMsg{Type: tea.KeyEsc})
		assert.False(t, h.monitor.Visible())
		assert.NotContains(t, h.model.View(), "988 Suicide")
	})

	t.Run("overlay swallows other keys", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		h.startSession(t)
		h.monitor.SignalMessage()

		h.typeText(t, "hello")
		assert.True(t, h.monitor.Visible())
		assert.Empty(t, h.model.Input.Value(), "typing must not reach the input")
	})

	t.Run("ctrl+r reopens the overlay", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		h.startSession(t)
		h.monitor.SignalMessage()
		h.update(t, tea.KeyMsg{Type: tea.KeyEsc})
		require.False(t, h.monitor.Visible())

		h.update(t, tea.KeyMsg{Type: tea.KeyCtrlR})
		assert.True(t, h.monitor.Visible())
	})

	t.Run("severe alert from the cache shows the overlay", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		h.startSession(t)

		alerts := []solace.RiskAlert{{
			UserID:    "u1",
			Source:    "mood",
			Severity:  solace.RiskHigh,
			CreatedAt: time.Now(),
		}}
		h.store.Register(cache.KeyActiveAlerts, func(ctx context.Context) (any, error) {
			return alerts, nil
		})
		_, err := h.store.Sync(context.Background(), cache.KeyActiveAlerts)
		require.NoError(t, err)

		cmd := h.update(t, bt.CacheUpdateMsg{Key: cache.KeyActiveAlerts})
		assert.NotNil(t, cmd, "the model keeps listening for updates")
		assert.True(t, h.monitor.Visible())

		// Dismissing keeps the alert count in the status line.
		h.update(t, tea.KeyMsg{Type: tea.KeyEsc})
		assert.Contains(t, h.model.View(), "1 active alert")
	})

	t.Run("an already-active extreme alert opens the overlay on load", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		fetches := 0
		h.store.Register(cache.KeyActiveAlerts, func(ctx context.Context) (any, error) {
			fetches++
			return []solace.RiskAlert{{
				UserID:    "u1",
				Source:    "chat",
				Severity:  solace.RiskExtreme,
				CreatedAt: time.Now(),
			}}, nil
		})
		h.initModel(t)

		batch, ok := h.model.Init()().(tea.BatchMsg)
		require.True(t, ok)
		for _, c := range batch {
			if msg := c(); msg != nil {
				h.update(t, msg)
			}
		}

		assert.Equal(t, 1, fetches, "loading the view fetches active alerts")
		assert.True(t, h.monitor.Visible())
	})

	t.Run("low severity alerts do not open the overlay", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		h.startSession(t)

		h.store.Register(cache.KeyActiveAlerts, func(ctx context.Context) (any, error) {
			return []solace.RiskAlert{{UserID: "u1", Source: "mood", Severity: solace.RiskMedium, CreatedAt: time.Now()}}, nil
		})
		_, err := h.store.Sync(context.Background(), cache.KeyActiveAlerts)
		require.NoError(t, err)

		h.update(t, bt.CacheUpdateMsg{Key: cache.KeyActiveAlerts})
		assert.False(t, h.monitor.Visible())
	})
}

func TestModel_MoodCheckIn(t *testing.T) {
	t.Parallel()

	t.Run("ctrl+o opens the form and enter submits it", func(t *testing.T) {
		t.Parallel()

		var gotScore int
		var gotLabel, gotJournal string
		backend := &mock.Backend{
			SubmitMoodEntryFn: func(ctx context.Context, score int, label, journal string) error {
				gotScore, gotLabel, gotJournal = score, label, journal
				return nil
			},
		}
		h := newHarness(t, backend)
		h.initModel(t)
		h.startSession(t)

		h.update(t, tea.KeyMsg{Type: tea.KeyCtrlO})
		require.True(t, h.model.MoodFormOpen())
		assert.Contains(t, h.model.View(), "Mood check-in")

		// Score starts at 5; two steps left lands on 3.
		h.update(t, tea.KeyMsg{Type: tea.KeyLeft})
		h.update(t, tea.KeyMsg{Type: tea.KeyLeft})
		h.typeText(t, "anxious")
		h.update(t, tea.KeyMsg{Type: tea.KeyTab})
		h.typeText(t, "long week")

		h.updateAndRun(t, tea.KeyMsg{Type: tea.KeyEnter})
		assert.False(t, h.model.MoodFormOpen())
		assert.Equal(t, 3, gotScore)
		assert.Equal(t, "anxious", gotLabel)
		assert.Equal(t, "long week", gotJournal)
	})

	t.Run("submission refreshes mood caches", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		h.startSession(t)

		fetches := 0
		h.store.Register(cache.KeyMoodTrend, func(ctx context.Context) (any, error) {
			fetches++
			return []solace.TrendPoint{}, nil
		})
		_, err := h.store.Sync(context.Background(), cache.KeyMoodTrend)
		require.NoError(t, err)
		require.Equal(t, 1, fetches)

		h.update(t, tea.KeyMsg{Type: tea.KeyCtrlO})
		h.updateAndRun(t, tea.KeyMsg{Type: tea.KeyEnter})

		_, err = h.store.Sync(context.Background(), cache.KeyMoodTrend)
		require.NoError(t, err)
		assert.Equal(t, 2, fetches, "mood submission invalidates the trend")
	})

	t.Run("a low score opens the crisis overlay", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		h.startSession(t)

		h.update(t, tea.KeyMsg{Type: tea.KeyCtrlO})
		// Score starts at 5; down to the low-mood threshold.
		h.update(t, tea.KeyMsg{Type: tea.KeyLeft})
		h.update(t, tea.KeyMsg{Type: tea.KeyLeft})
		h.updateAndRun(t, tea.KeyMsg{Type: tea.KeyEnter})

		assert.True(t, h.monitor.Visible())
	})

	t.Run("a mid score does not open the overlay", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, &mock.Backend{})
		h.initModel(t)
		h.startSession(t)

		h.update(t, tea.KeyMsg{Type: tea.KeyCtrlO})
		h.updateAndRun(t, tea.KeyMsg{Type: tea.KeyEnter})
		assert.False(t, h.monitor.Visible())
	})

	t.Run("esc cancels without submitting", func(t *testing.T) {
		t.Parallel()

		backend := &mock.Backend{
			SubmitMoodEntryFn: func(ctx context.Context, score int, label, journal string) error {
				t.Error("nothing should be submitted")
				return nil
			},
		}
		h := newHarness(t, backend)
		h.initModel(t)
		h.startSession(t)

		h.update(t, tea.KeyMsg{Type: tea.KeyCtrlO})
		h.update(t, tea.KeyMsg{Type: tea.KeyEsc})
		assert.False(t, h.model.MoodFormOpen())
	})

	t.Run("failed submission surfaces the error", func(t *testing.T) {
		t.Parallel()

		backend := &mock.Backend{
			SubmitMoodEntryFn: func(ctx context.Context, score int, label, journal string) error {
				return errors.New("boom")
			},
		}
		h := newHarness(t, backend)
		h.initModel(t)
		h.startSession(t)

		h.update(t, tea.KeyMsg{Type: tea.KeyCtrlO})
		h.updateAndRun(t, tea.KeyMsg{Type: tea.KeyEnter})
		assert.False(t, h.model.MoodFormOpen())
		require.Error(t, h.model.Err())
	})
}

func TestModel_Teatest(t *testing.T) {
	t.Parallel()

	h := newHarness(t, &mock.Backend{})
	tm := teatest.NewTestModel(t, h.model, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Solace"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}
