package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/notificationchannel"
	"github.com/loop-symphony/symphony/ent/notificationhistory"
	"github.com/loop-symphony/symphony/pkg/config"
)

func intPtr(v int) *int { return &v }

type recordedDelivery struct {
	taskID *string
	kind   string
	status notificationhistory.Status
	detail string
}

type fakeStore struct {
	mu          sync.Mutex
	prefs       *ent.NotificationPreference
	prefsErr    error
	channels    []*ent.NotificationChannel
	channelsErr error
	recordErr   error
	deliveries  []recordedDelivery
}

func (f *fakeStore) GetPreferences(_ context.Context, _, _ string) (*ent.NotificationPreference, error) {
	return f.prefs, f.prefsErr
}

func (f *fakeStore) ListActiveChannels(_ context.Context, _, _ string) ([]*ent.NotificationChannel, error) {
	return f.channels, f.channelsErr
}

func (f *fakeStore) RecordDelivery(_ context.Context, _, _ string, taskID *string, kind string, status notificationhistory.Status, detail string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deliveries = append(f.deliveries, recordedDelivery{taskID: taskID, kind: kind, status: status, detail: detail})
	return f.recordErr
}

func (f *fakeStore) recorded() []recordedDelivery {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedDelivery, len(f.deliveries))
	copy(out, f.deliveries)
	return out
}

type fakeProfiles struct {
	profile *ent.UserProfile
	err     error
}

func (f *fakeProfiles) GetProfile(_ context.Context, _, _ string) (*ent.UserProfile, error) {
	return f.profile, f.err
}

type fakeSender struct {
	mu      sync.Mutex
	err     error
	targets []string
	notices []TaskNotice
}

func (f *fakeSender) Send(_ context.Context, target string, notice TaskNotice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.targets = append(f.targets, target)
	f.notices = append(f.notices, notice)
	return f.err
}

func (f *fakeSender) sent() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.targets)
}

func newTestNotifier(store *fakeStore, profiles ProfileDirectory, senders map[notificationchannel.Kind]Sender) *Notifier {
	return &Notifier{
		store:    store,
		profiles: profiles,
		senders:  senders,
		timeout:  time.Second,
		now:      time.Now,
	}
}

func channel(kind notificationchannel.Kind, target string) *ent.NotificationChannel {
	return &ent.NotificationChannel{Kind: kind, Target: target, IsActive: true}
}

var testNotice = TaskNotice{
	TaskID:     "task-1",
	Query:      "summarize overnight alerts",
	Outcome:    "complete",
	Summary:    "All quiet.",
	Confidence: 0.9,
}

func TestNotifyDeliversToAllChannels(t *testing.T) {
	telegram := &fakeSender{}
	webhook := &fakeSender{}
	store := &fakeStore{
		channels: []*ent.NotificationChannel{
			channel(notificationchannel.KindTelegram, "chat-42"),
			channel(notificationchannel.KindWebhook, "https://example.com/hook"),
		},
	}
	n := newTestNotifier(store, nil, map[notificationchannel.Kind]Sender{
		notificationchannel.KindTelegram: telegram,
		notificationchannel.KindWebhook:  webhook,
	})

	n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", testNotice)

	assert.Equal(t, 1, telegram.sent())
	assert.Equal(t, 1, webhook.sent())
	assert.Equal(t, []string{"chat-42"}, telegram.targets)

	deliveries := store.recorded()
	require.Len(t, deliveries, 2)
	for _, d := range deliveries {
		assert.Equal(t, notificationhistory.StatusSent, d.status)
		require.NotNil(t, d.taskID)
		assert.Equal(t, "task-1", *d.taskID)
	}
}

func TestNotifyNilNotifierIsNoOp(t *testing.T) {
	var n *Notifier
	// Should not panic.
	n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", testNotice)
}

func TestNotifySkipsAnonymousTasks(t *testing.T) {
	store := &fakeStore{channels: []*ent.NotificationChannel{channel(notificationchannel.KindWebhook, "https://x")}}
	n := newTestNotifier(store, nil, map[notificationchannel.Kind]Sender{
		notificationchannel.KindWebhook: &fakeSender{},
	})

	n.NotifyTaskTerminal(context.Background(), "app-1", "", testNotice)

	assert.Empty(t, store.recorded())
}

func TestNotifySuppressedWhenDisabled(t *testing.T) {
	sender := &fakeSender{}
	store := &fakeStore{
		prefs:    &ent.NotificationPreference{Enabled: false},
		channels: []*ent.NotificationChannel{channel(notificationchannel.KindWebhook, "https://x")},
	}
	n := newTestNotifier(store, nil, map[notificationchannel.Kind]Sender{
		notificationchannel.KindWebhook: sender,
	})

	n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", testNotice)

	assert.Zero(t, sender.sent())
	deliveries := store.recorded()
	require.Len(t, deliveries, 1)
	assert.Equal(t, "all", deliveries[0].kind)
	assert.Equal(t, notificationhistory.StatusSuppressed, deliveries[0].status)
	assert.Equal(t, "notifications disabled", deliveries[0].detail)
}

func TestNotifyOutcomeFilter(t *testing.T) {
	t.Run("filtered outcome suppressed", func(t *testing.T) {
		sender := &fakeSender{}
		store := &fakeStore{
			prefs:    &ent.NotificationPreference{Enabled: true, Outcomes: []string{"complete", "failed"}},
			channels: []*ent.NotificationChannel{channel(notificationchannel.KindWebhook, "https://x")},
		}
		n := newTestNotifier(store, nil, map[notificationchannel.Kind]Sender{
			notificationchannel.KindWebhook: sender,
		})

		notice := testNotice
		notice.Outcome = "bounded"
		n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", notice)

		assert.Zero(t, sender.sent())
		deliveries := store.recorded()
		require.Len(t, deliveries, 1)
		assert.Equal(t, notificationhistory.StatusSuppressed, deliveries[0].status)
		assert.Equal(t, "outcome bounded filtered", deliveries[0].detail)
	})

	t.Run("listed outcome delivered", func(t *testing.T) {
		sender := &fakeSender{}
		store := &fakeStore{
			prefs:    &ent.NotificationPreference{Enabled: true, Outcomes: []string{"complete", "failed"}},
			channels: []*ent.NotificationChannel{channel(notificationchannel.KindWebhook, "https://x")},
		}
		n := newTestNotifier(store, nil, map[notificationchannel.Kind]Sender{
			notificationchannel.KindWebhook: sender,
		})

		n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", testNotice)

		assert.Equal(t, 1, sender.sent())
	})

	t.Run("empty filter delivers everything", func(t *testing.T) {
		sender := &fakeSender{}
		store := &fakeStore{
			prefs:    &ent.NotificationPreference{Enabled: true},
			channels: []*ent.NotificationChannel{channel(notificationchannel.KindWebhook, "https://x")},
		}
		n := newTestNotifier(store, nil, map[notificationchannel.Kind]Sender{
			notificationchannel.KindWebhook: sender,
		})

		notice := testNotice
		notice.Outcome = "inconclusive"
		n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", notice)

		assert.Equal(t, 1, sender.sent())
	})
}

func TestNotifyQuietHours(t *testing.T) {
	// Fixed instant: 10:00 UTC, which is 06:00 in New York (EDT).
	fixedNow := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	newQuietNotifier := func(store *fakeStore, profiles ProfileDirectory, sender Sender) *Notifier {
		n := newTestNotifier(store, profiles, map[notificationchannel.Kind]Sender{
			notificationchannel.KindWebhook: sender,
		})
		n.now = func() time.Time { return fixedNow }
		return n
	}

	t.Run("suppressed inside window", func(t *testing.T) {
		sender := &fakeSender{}
		store := &fakeStore{
			prefs:    &ent.NotificationPreference{Enabled: true, QuietHoursStart: intPtr(8), QuietHoursEnd: intPtr(12)},
			channels: []*ent.NotificationChannel{channel(notificationchannel.KindWebhook, "https://x")},
		}
		n := newQuietNotifier(store, nil, sender)

		n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", testNotice)

		assert.Zero(t, sender.sent())
		deliveries := store.recorded()
		require.Len(t, deliveries, 1)
		assert.Equal(t, notificationhistory.StatusSuppressed, deliveries[0].status)
		assert.Equal(t, "quiet hours (08:00-12:00)", deliveries[0].detail)
	})

	t.Run("profile timezone shifts the window", func(t *testing.T) {
		sender := &fakeSender{}
		store := &fakeStore{
			prefs:    &ent.NotificationPreference{Enabled: true, QuietHoursStart: intPtr(8), QuietHoursEnd: intPtr(12)},
			channels: []*ent.NotificationChannel{channel(notificationchannel.KindWebhook, "https://x")},
		}
		profiles := &fakeProfiles{profile: &ent.UserProfile{Timezone: "America/New_York"}}
		n := newQuietNotifier(store, profiles, sender)

		n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", testNotice)

		// 06:00 local is outside 08:00-12:00, so it delivers.
		assert.Equal(t, 1, sender.sent())
	})

	t.Run("unknown timezone falls back to UTC", func(t *testing.T) {
		sender := &fakeSender{}
		store := &fakeStore{
			prefs:    &ent.NotificationPreference{Enabled: true, QuietHoursStart: intPtr(8), QuietHoursEnd: intPtr(12)},
			channels: []*ent.NotificationChannel{channel(notificationchannel.KindWebhook, "https://x")},
		}
		profiles := &fakeProfiles{profile: &ent.UserProfile{Timezone: "Mars/Olympus"}}
		n := newQuietNotifier(store, profiles, sender)

		n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", testNotice)

		assert.Zero(t, sender.sent())
	})
}

func TestInQuietHours(t *testing.T) {
	tests := []struct {
		start, end, hour int
		want             bool
	}{
		// Daytime window [9, 17).
		{9, 17, 9, true},
		{9, 17, 16, true},
		{9, 17, 17, false},
		{9, 17, 8, false},
		// Overnight window [22, 6) wraps midnight.
		{22, 6, 22, true},
		{22, 6, 23, true},
		{22, 6, 2, true},
		{22, 6, 5, true},
		{22, 6, 6, false},
		{22, 6, 21, false},
		{22, 6, 12, false},
		// Degenerate window suppresses nothing.
		{0, 0, 0, false},
		{13, 13, 13, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%02d-%02d_at_%02d", tt.start, tt.end, tt.hour), func(t *testing.T) {
			assert.Equal(t, tt.want, inQuietHours(tt.start, tt.end, tt.hour))
		})
	}
}

func TestNotifyNoActiveChannels(t *testing.T) {
	store := &fakeStore{}
	n := newTestNotifier(store, nil, map[notificationchannel.Kind]Sender{})

	n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", testNotice)

	deliveries := store.recorded()
	require.Len(t, deliveries, 1)
	assert.Equal(t, "all", deliveries[0].kind)
	assert.Equal(t, notificationhistory.StatusSuppressed, deliveries[0].status)
	assert.Equal(t, "no active channels", deliveries[0].detail)
}

func TestNotifyMissingSenderRecordsFailure(t *testing.T) {
	store := &fakeStore{
		channels: []*ent.NotificationChannel{channel(notificationchannel.KindSlack, "C123")},
	}
	n := newTestNotifier(store, nil, map[notificationchannel.Kind]Sender{})

	n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", testNotice)

	deliveries := store.recorded()
	require.Len(t, deliveries, 1)
	assert.Equal(t, "slack", deliveries[0].kind)
	assert.Equal(t, notificationhistory.StatusFailed, deliveries[0].status)
	assert.Equal(t, "no slack credentials configured", deliveries[0].detail)
}

func TestNotifySenderFailureDoesNotStopOthers(t *testing.T) {
	broken := &fakeSender{err: errors.New("connection refused")}
	working := &fakeSender{}
	store := &fakeStore{
		channels: []*ent.NotificationChannel{
			channel(notificationchannel.KindTelegram, "chat-1"),
			channel(notificationchannel.KindWebhook, "https://x"),
		},
	}
	n := newTestNotifier(store, nil, map[notificationchannel.Kind]Sender{
		notificationchannel.KindTelegram: broken,
		notificationchannel.KindWebhook:  working,
	})

	n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", testNotice)

	assert.Equal(t, 1, working.sent())
	deliveries := store.recorded()
	require.Len(t, deliveries, 2)
	assert.Equal(t, notificationhistory.StatusFailed, deliveries[0].status)
	assert.Equal(t, "connection refused", deliveries[0].detail)
	assert.Equal(t, notificationhistory.StatusSent, deliveries[1].status)
}

func TestNotifyPreferenceLookupFailureDeliversAnyway(t *testing.T) {
	sender := &fakeSender{}
	store := &fakeStore{
		prefsErr: errors.New("database down"),
		channels: []*ent.NotificationChannel{channel(notificationchannel.KindWebhook, "https://x")},
	}
	n := newTestNotifier(store, nil, map[notificationchannel.Kind]Sender{
		notificationchannel.KindWebhook: sender,
	})

	n.NotifyTaskTerminal(context.Background(), "app-1", "user-1", testNotice)

	assert.Equal(t, 1, sender.sent())
}

func TestNewNotifierSenderWiring(t *testing.T) {
	t.Run("webhook always available", func(t *testing.T) {
		n := NewNotifier(&fakeStore{}, nil, config.NotifyConfig{})
		assert.Contains(t, n.senders, notificationchannel.KindWebhook)
		assert.NotContains(t, n.senders, notificationchannel.KindTelegram)
		assert.NotContains(t, n.senders, notificationchannel.KindSlack)
	})

	t.Run("tokens enable their senders", func(t *testing.T) {
		n := NewNotifier(&fakeStore{}, nil, config.NotifyConfig{
			TelegramBotToken: "123:abc",
			SlackBotToken:    "xoxb-test",
		})
		assert.Contains(t, n.senders, notificationchannel.KindTelegram)
		assert.Contains(t, n.senders, notificationchannel.KindSlack)
	})

	t.Run("zero timeout gets a default", func(t *testing.T) {
		n := NewNotifier(&fakeStore{}, nil, config.NotifyConfig{})
		assert.Equal(t, 10*time.Second, n.timeout)
	})
}
