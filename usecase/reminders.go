package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"main/model"
	"main/notify"
	"main/schedule"
	"main/services"

	"github.com/jmhodges/clock"
)

// Reminders closer than this to "now" would fire before the user is done
// creating them.
const minLeadTime = 60 * time.Second

// How often the countdown state is recomputed.
const pollInterval = time.Second

// ReminderStore is the persistence surface of the lifecycle manager.
type ReminderStore interface {
	AddReminder(ctx context.Context, reminder *model.Reminder) (string, error)
	GetUserReminders(ctx context.Context, userID string) ([]*model.Reminder, error)
	DeleteReminder(ctx context.Context, reminderID string) (int64, error)
}

// ReminderService owns the reminder lifecycle: it validates creation,
// keeps the per-user in-memory collection in step with the store, and
// keeps the notifier's pending alerts matching that collection.
type ReminderService struct {
	RemindersRepo ReminderStore
	Notifier      notify.Notifier
	Cache         *services.ReminderCache

	clk      clock.Clock
	resolver *schedule.Resolver

	mu      sync.RWMutex
	byOwner map[string][]*model.Reminder
	wasDue  map[string]bool
}

func NewReminderService(repo ReminderStore, notifier notify.Notifier) *ReminderService {
	return NewReminderServiceWithClock(repo, notifier, clock.New())
}

func NewReminderServiceWithClock(repo ReminderStore, notifier notify.Notifier, clk clock.Clock) *ReminderService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &ReminderService{
		RemindersRepo: repo,
		Notifier:      notifier,
		clk:           clk,
		resolver:      schedule.NewWithClock(clk),
		byOwner:       make(map[string][]*model.Reminder),
		wasDue:        make(map[string]bool),
	}
}

// Create validates and persists a reminder for an absolute instant, then
// schedules its alert. The store insert must succeed before any state
// changes; a failed insert leaves no trace.
func (svc *ReminderService) Create(ctx context.Context, userID, text string, dueAt time.Time, tag string) (*model.Reminder, error) {
	if userID == "" {
		return nil, validationErrf("user ID is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, validationErrf("reminder text is required")
	}

	now := svc.clk.Now()
	if dueAt.Before(now) {
		return nil, validationErrf("reminder time is in the past")
	}
	if dueAt.Sub(now) < minLeadTime {
		return nil, validationErrf("reminder time is too close to now, pick a time at least a minute away")
	}

	reminder := &model.Reminder{
		UserID:   userID,
		Reminder: text,
		Date:     dueAt,
		Tag:      model.ParseTag(tag),
	}

	id, err := svc.RemindersRepo.AddReminder(ctx, reminder)
	if err != nil {
		return nil, transportErr("add reminder", err)
	}
	reminder.ReminderID = id

	svc.mu.Lock()
	svc.byOwner[userID] = append(svc.byOwner[userID], reminder)
	svc.mu.Unlock()

	svc.invalidateCache(userID)

	if _, err := svc.Notifier.Schedule(reminder.ReminderID, reminder.Reminder, reminder.Date); err != nil {
		// The reminder is persisted; a missed alert is not worth failing
		// the creation over.
		log.Printf("Failed to schedule alert for reminder %s: %v", reminder.ReminderID, err)
	}

	return reminder, nil
}

// CreateFromSelection is the weekday+time entry path with a 24-hour time
// of day.
func (svc *ReminderService) CreateFromSelection(ctx context.Context, userID, text, day string, hour, minute int, tag string) (*model.Reminder, error) {
	dueAt, err := svc.resolver.Resolve(day, hour, minute)
	if err != nil {
		return nil, validationErrf("%v", err)
	}
	return svc.Create(ctx, userID, text, dueAt, tag)
}

// CreateFromClockTime is the weekday+time entry path with a 12-hour
// string like "07:30 PM".
func (svc *ReminderService) CreateFromClockTime(ctx context.Context, userID, text, day, clockTime, tag string) (*model.Reminder, error) {
	dueAt, err := svc.resolver.ResolveClockTime(day, clockTime)
	if err != nil {
		return nil, validationErrf("%v", err)
	}
	return svc.Create(ctx, userID, text, dueAt, tag)
}

// LoadAll replaces the user's in-memory collection with the store's
// current contents and re-schedules alerts for everything still in the
// future. A failed load keeps the last known good collection.
func (svc *ReminderService) LoadAll(ctx context.Context, userID string) ([]*model.Reminder, error) {
	if cached, ok := svc.cachedReminders(userID); ok {
		svc.replaceCollection(userID, cached)
		return cached, nil
	}

	reminders, err := svc.RemindersRepo.GetUserReminders(ctx, userID)
	if err != nil {
		return nil, transportErr("load reminders", err)
	}

	svc.replaceCollection(userID, reminders)
	svc.cacheReminders(userID, reminders)

	return reminders, nil
}

func (svc *ReminderService) replaceCollection(userID string, reminders []*model.Reminder) {
	svc.mu.Lock()
	svc.byOwner[userID] = reminders
	svc.mu.Unlock()

	now := svc.clk.Now()
	scheduled := 0
	for _, r := range reminders {
		// Already-due reminders stay visible but get no alert.
		if !r.Date.After(now) {
			continue
		}
		if _, err := svc.Notifier.Schedule(r.ReminderID, r.Reminder, r.Date); err != nil {
			log.Printf("Failed to re-schedule alert for reminder %s: %v", r.ReminderID, err)
			continue
		}
		scheduled++
	}
	log.Printf("Scheduled %d/%d reminder alerts for user %s", scheduled, len(reminders), userID)
}

// Delete removes the reminder from the store, the in-memory collection
// and the notifier. An unknown id reports not-found without touching
// anything.
func (svc *ReminderService) Delete(ctx context.Context, reminderID string) error {
	deleted, err := svc.RemindersRepo.DeleteReminder(ctx, reminderID)
	if err != nil {
		return transportErr("delete reminder", err)
	}
	if deleted == 0 {
		return ErrReminderNotFound
	}

	svc.mu.Lock()
	var owner string
	for userID, reminders := range svc.byOwner {
		for i, r := range reminders {
			if r.ReminderID == reminderID {
				svc.byOwner[userID] = append(reminders[:i], reminders[i+1:]...)
				owner = userID
				break
			}
		}
	}
	delete(svc.wasDue, reminderID)
	svc.mu.Unlock()

	if owner != "" {
		svc.invalidateCache(owner)
	}
	svc.Notifier.Cancel(reminderID)

	return nil
}

// Snapshot returns a copy of the user's current in-memory collection.
func (svc *ReminderService) Snapshot(userID string) []*model.Reminder {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]*model.Reminder(nil), svc.byOwner[userID]...)
}

// Remaining is the countdown value for a reminder right now.
func (svc *ReminderService) Remaining(r *model.Reminder) int64 {
	return schedule.RemainingSeconds(r.Date, svc.clk.Now())
}

// Run polls the collections once a second, flipping reminders from
// upcoming to due as their instants pass. The transition is one-way and
// due reminders stay put until the user deletes them.
func (svc *ReminderService) Run(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			svc.Notifier.CancelAll()
			return
		case <-ticker.C:
			svc.pollOnce()
		}
	}
}

func (svc *ReminderService) pollOnce() {
	now := svc.clk.Now()

	svc.mu.Lock()
	defer svc.mu.Unlock()

	for _, reminders := range svc.byOwner {
		for _, r := range reminders {
			if r.Due(now) && !svc.wasDue[r.ReminderID] {
				svc.wasDue[r.ReminderID] = true
				log.Printf("Reminder %s is due: %s", r.ReminderID, r.Reminder)
			}
		}
	}
}

func (svc *ReminderService) cachedReminders(userID string) ([]*model.Reminder, bool) {
	if svc.Cache == nil {
		return nil, false
	}
	reminders, ok := svc.Cache.GetUserReminders(userID)
	return reminders, ok
}

func (svc *ReminderService) cacheReminders(userID string, reminders []*model.Reminder) {
	if svc.Cache == nil {
		return
	}
	if err := svc.Cache.SetUserReminders(userID, reminders); err != nil {
		log.Printf("Failed to cache reminders for user %s: %v", userID, err)
	}
}

func (svc *ReminderService) invalidateCache(userID string) {
	if svc.Cache == nil {
		return
	}
	if err := svc.Cache.Invalidate(userID); err != nil {
		log.Printf("Failed to invalidate reminder cache for user %s: %v", userID, err)
	}
}
