// Package notify delivers terminal-task notifications to a user's
// registered channels. Delivery is best effort and fail-open: a broken
// channel costs a history row and a log line, never the task.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/ent/notificationchannel"
	"github.com/loop-symphony/symphony/ent/notificationhistory"
	"github.com/loop-symphony/symphony/pkg/config"
)

// TaskNotice carries the channel-agnostic summary of one terminal task;
// each sender renders it for its medium.
type TaskNotice struct {
	TaskID     string
	Query      string
	Outcome    string
	Summary    string
	Confidence float64
}

// Sender delivers one notice to a channel target.
type Sender interface {
	Send(ctx context.Context, target string, notice TaskNotice) error
}

// Store is the slice of the notification service the notifier consumes:
// delivery rules, channel targets and the attempt history.
type Store interface {
	GetPreferences(ctx context.Context, appID, userID string) (*ent.NotificationPreference, error)
	ListActiveChannels(ctx context.Context, appID, userID string) ([]*ent.NotificationChannel, error)
	RecordDelivery(ctx context.Context, appID, userID string, taskID *string, channelKind string, status notificationhistory.Status, detail string) error
}

// ProfileDirectory resolves the user's timezone for quiet hours.
type ProfileDirectory interface {
	GetProfile(ctx context.Context, appID, userID string) (*ent.UserProfile, error)
}

// Notifier fans a terminal task out to the user's active channels,
// honoring the stored delivery rules. Nil-safe: calls on a nil notifier
// are no-ops.
type Notifier struct {
	store    Store
	profiles ProfileDirectory
	senders  map[notificationchannel.Kind]Sender
	timeout  time.Duration
	now      func() time.Time
}

// NewNotifier builds a notifier with the senders the config carries
// credentials for. The webhook sender needs none and is always on.
func NewNotifier(store Store, profiles ProfileDirectory, cfg config.NotifyConfig) *Notifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	senders := map[notificationchannel.Kind]Sender{
		notificationchannel.KindWebhook: NewWebhookSender(timeout),
	}
	if cfg.TelegramBotToken != "" {
		senders[notificationchannel.KindTelegram] = NewTelegramSender(cfg.TelegramBotToken, timeout)
	}
	if cfg.SlackBotToken != "" {
		senders[notificationchannel.KindSlack] = NewSlackSender(cfg.SlackBotToken)
	}
	return &Notifier{
		store:    store,
		profiles: profiles,
		senders:  senders,
		timeout:  timeout,
		now:      time.Now,
	}
}

// NotifyTaskTerminal delivers the notice to every active channel of
// (app, user) unless the stored rules suppress it. Every attempt,
// including suppressed ones, lands in the history; nothing propagates
// to the caller.
func (n *Notifier) NotifyTaskTerminal(ctx context.Context, appID, userID string, notice TaskNotice) {
	if n == nil || userID == "" {
		return
	}
	log := slog.With("task_id", notice.TaskID, "app_id", appID, "user_id", userID)

	if cause := n.suppressionCause(ctx, appID, userID, notice.Outcome); cause != "" {
		n.record(ctx, appID, userID, notice.TaskID, "all", notificationhistory.StatusSuppressed, cause)
		log.Debug("Notification suppressed", "cause", cause)
		return
	}

	channels, err := n.store.ListActiveChannels(ctx, appID, userID)
	if err != nil {
		log.Error("Failed to list notification channels", "error", err)
		return
	}
	if len(channels) == 0 {
		n.record(ctx, appID, userID, notice.TaskID, "all", notificationhistory.StatusSuppressed, "no active channels")
		return
	}

	for _, channel := range channels {
		sender, ok := n.senders[channel.Kind]
		if !ok {
			n.record(ctx, appID, userID, notice.TaskID, string(channel.Kind), notificationhistory.StatusFailed,
				fmt.Sprintf("no %s credentials configured", channel.Kind))
			continue
		}

		sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
		err := sender.Send(sendCtx, channel.Target, notice)
		cancel()
		if err != nil {
			n.record(ctx, appID, userID, notice.TaskID, string(channel.Kind), notificationhistory.StatusFailed, err.Error())
			log.Warn("Notification delivery failed", "kind", channel.Kind, "error", err)
			continue
		}
		n.record(ctx, appID, userID, notice.TaskID, string(channel.Kind), notificationhistory.StatusSent, "")
		log.Debug("Notification delivered", "kind", channel.Kind)
	}
}

// suppressionCause checks the stored rules; empty means deliver. A rule
// lookup failure delivers anyway: losing one filter beats losing the
// notification.
func (n *Notifier) suppressionCause(ctx context.Context, appID, userID, outcome string) string {
	prefs, err := n.store.GetPreferences(ctx, appID, userID)
	if err != nil {
		slog.Warn("Failed to load notification preferences, delivering anyway",
			"app_id", appID, "user_id", userID, "error", err)
		return ""
	}
	if prefs == nil {
		return ""
	}
	if !prefs.Enabled {
		return "notifications disabled"
	}
	if len(prefs.Outcomes) > 0 && !slices.Contains(prefs.Outcomes, outcome) {
		return fmt.Sprintf("outcome %s filtered", outcome)
	}
	if prefs.QuietHoursStart != nil && prefs.QuietHoursEnd != nil {
		hour := n.now().In(n.userLocation(ctx, appID, userID)).Hour()
		if inQuietHours(*prefs.QuietHoursStart, *prefs.QuietHoursEnd, hour) {
			return fmt.Sprintf("quiet hours (%02d:00-%02d:00)", *prefs.QuietHoursStart, *prefs.QuietHoursEnd)
		}
	}
	return ""
}

// userLocation loads the profile timezone, defaulting to UTC.
func (n *Notifier) userLocation(ctx context.Context, appID, userID string) *time.Location {
	if n.profiles == nil {
		return time.UTC
	}
	profile, err := n.profiles.GetProfile(ctx, appID, userID)
	if err != nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(profile.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// inQuietHours reports whether hour falls inside [start, end), wrapping
// past midnight when start > end. An empty window suppresses nothing.
func inQuietHours(start, end, hour int) bool {
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

// record writes one history row, best effort.
func (n *Notifier) record(ctx context.Context, appID, userID, taskID, kind string, status notificationhistory.Status, detail string) {
	var tid *string
	if taskID != "" {
		tid = &taskID
	}
	if err := n.store.RecordDelivery(ctx, appID, userID, tid, kind, status, detail); err != nil {
		slog.Error("Failed to record notification history",
			"task_id", taskID, "kind", kind, "error", err)
	}
}
