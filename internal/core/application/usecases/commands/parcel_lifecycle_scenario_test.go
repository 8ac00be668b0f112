package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/application/usecases/commands"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/notification"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/tracking"
	"github.com/anj1741/Routegenius-final-project/internal/core/ports"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory stand-in for the persistence layer, backing
// the end-to-end lifecycle scenario below. It satisfies every unit of work
// interface the command handlers need; transactions are no-ops.
type memoryStore struct {
	mu            sync.Mutex
	parcels       map[kernel.UUID]*parcel.Parcel
	events        []*tracking.Event
	notifications map[kernel.UUID]*notification.Notification
	eventSeq      time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		parcels:       make(map[kernel.UUID]*parcel.Parcel),
		notifications: make(map[kernel.UUID]*notification.Notification),
		eventSeq:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memoryStore) Begin(context.Context) error    { return nil }
func (s *memoryStore) Commit(context.Context) error   { return nil }
func (s *memoryStore) Rollback(context.Context) error { return nil }

func (s *memoryStore) Create() commands.ParcelUoW { return s }

func (s *memoryStore) ParcelRepository() ports.ParcelRepository {
	return memoryParcelRepo{store: s}
}

func (s *memoryStore) TrackingEventRepository() ports.TrackingEventRepository {
	return memoryEventRepo{store: s}
}

func (s *memoryStore) NotificationRepository() ports.NotificationRepository {
	return memoryNotificationRepo{store: s}
}

// dispatchFactory adapts memoryStore to the dispatch unit of work factory,
// which has a different Create return type.
type dispatchFactory struct{ store *memoryStore }

func (f dispatchFactory) Create() commands.DispatchUoW { return f.store }

type memoryParcelRepo struct{ store *memoryStore }

func (r memoryParcelRepo) Add(_ context.Context, p *parcel.Parcel) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.parcels[p.ID()] = p.Clone()
	return nil
}

func (r memoryParcelRepo) Update(_ context.Context, p *parcel.Parcel) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.parcels[p.ID()]; !ok {
		return errs.NewObjectNotFoundError("parcelId", p.ID().String())
	}
	r.store.parcels[p.ID()] = p.Clone()
	return nil
}

func (r memoryParcelRepo) Get(_ context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.parcels[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("parcelId", id.String())
	}
	return p.Clone(), nil
}

func (r memoryParcelRepo) GetByTrackingID(_ context.Context, trackingID kernel.TrackingID) (*parcel.Parcel, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.parcels {
		if p.TrackingID().IsEqual(trackingID) {
			return p.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("trackingId", trackingID.String())
}

func (r memoryParcelRepo) GetBySenderOrRecipient(_ context.Context, userID kernel.UUID) ([]*parcel.Parcel, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*parcel.Parcel
	for _, p := range r.store.parcels {
		if p.SenderID().IsEqual(userID) || p.RecipientID().IsEqual(userID) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (r memoryParcelRepo) Exists(_ context.Context, id kernel.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, ok := r.store.parcels[id]
	return ok, nil
}

func (r memoryParcelRepo) Delete(_ context.Context, id kernel.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.parcels[id]; !ok {
		return errs.NewObjectNotFoundError("parcelId", id.String())
	}
	delete(r.store.parcels, id)
	return nil
}

type memoryEventRepo struct{ store *memoryStore }

func (r memoryEventRepo) Add(_ context.Context, e *tracking.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if e.Timestamp().IsZero() {
		r.store.eventSeq = r.store.eventSeq.Add(time.Second)
		stamped, err := tracking.RestoreEvent(
			e.ID(), e.ParcelID(), e.Status(), e.Description(), e.City(), e.Country(), r.store.eventSeq)
		if err != nil {
			return err
		}
		e = stamped
	}
	r.store.events = append(r.store.events, e)
	return nil
}

func (r memoryEventRepo) GetByParcelOrderedByTime(_ context.Context, parcelID kernel.UUID) ([]*tracking.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*tracking.Event
	for _, e := range r.store.events {
		if e.ParcelID().IsEqual(parcelID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memoryEventRepo) DeleteByParcel(_ context.Context, parcelID kernel.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.events[:0]
	for _, e := range r.store.events {
		if !e.ParcelID().IsEqual(parcelID) {
			kept = append(kept, e)
		}
	}
	r.store.events = kept
	return nil
}

type memoryNotificationRepo struct{ store *memoryStore }

func (r memoryNotificationRepo) Add(_ context.Context, n *notification.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.notifications[n.ID()] = n
	return nil
}

func (r memoryNotificationRepo) Update(_ context.Context, n *notification.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.notifications[n.ID()]; !ok {
		return errs.NewObjectNotFoundError("notification", n.ID().String())
	}
	r.store.notifications[n.ID()] = n
	return nil
}

func (r memoryNotificationRepo) Get(_ context.Context, id kernel.UUID) (*notification.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n, ok := r.store.notifications[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("notification", id.String())
	}
	return n, nil
}

func (r memoryNotificationRepo) GetByUserOrderedByTimeDesc(_ context.Context, userID kernel.UUID) ([]*notification.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*notification.Notification
	for _, n := range r.store.notifications {
		if n.UserID().IsEqual(userID) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r memoryNotificationRepo) GetUnreadByUser(ctx context.Context, userID kernel.UUID) ([]*notification.Notification, error) {
	all, err := r.GetByUserOrderedByTimeDesc(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []*notification.Notification
	for _, n := range all {
		if !n.IsRead() {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r memoryNotificationRepo) Delete(_ context.Context, id kernel.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.notifications[id]; !ok {
		return errs.NewObjectNotFoundError("notification", id.String())
	}
	delete(r.store.notifications, id)
	return nil
}

// openDirectory accepts every user and answers a fixed contact address.
type openDirectory struct{}

func (openDirectory) Exists(context.Context, kernel.UUID) (bool, error) {
	return true, nil
}

func (openDirectory) GetContact(context.Context, kernel.UUID) (ports.UserContact, error) {
	return ports.UserContact{Email: "recipient@example.com"}, nil
}

// failingGenerator forces the deterministic fallback message path.
type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string) (string, error) {
	return "", errors.New("model unavailable")
}

// recordingMailer captures sent mail for assertions.
type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To, Subject, Body string
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// syncDispatcher wraps the real dispatch handler and signals each
// completed dispatch, so the test can wait for the detached goroutine.
type syncDispatcher struct {
	inner commands.DispatchNotificationCommandHandler
	done  chan struct{}
}

func (d *syncDispatcher) Handle(ctx context.Context, cmd commands.DispatchNotificationCommand) error {
	err := d.inner.Handle(ctx, cmd)
	d.done <- struct{}{}
	return err
}

// TestParcelLifecycle_EndToEnd walks a parcel through its whole life:
// creation with a seed event, a status change that appends a ledger entry
// and produces a notification through the fallback message path, a no-op
// update that leaves no trace, and deletion with history cascade.
func TestParcelLifecycle_EndToEnd(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	mailer := &recordingMailer{}
	logger := slog.Default()
	clk := fixedClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}

	dispatchHandler := commands.NewDispatchNotificationCommandHandler(
		dispatchFactory{store: store}, openDirectory{}, failingGenerator{}, mailer, logger)
	dispatcher := &syncDispatcher{inner: dispatchHandler, done: make(chan struct{}, 1)}

	createHandler := commands.NewCreateParcelCommandHandler(store, openDirectory{}, clk)
	updateHandler := commands.NewUpdateParcelCommandHandler(store, openDirectory{}, dispatcher, nil, clk, logger)
	deleteHandler := commands.NewDeleteParcelCommandHandler(store)

	// Create: parcel stored as PENDING with one seed event.
	parcelID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	createCmd, err := commands.NewCreateParcelCommand(parcelID, validParams(kernel.NewUUID(), recipientID))
	require.NoError(t, err)
	require.NoError(t, createHandler.Handle(ctx, createCmd))

	stored, err := store.ParcelRepository().Get(ctx, parcelID)
	require.NoError(t, err)
	assert.Equal(t, parcel.StatusPending, stored.Status())

	history, err := store.TrackingEventRepository().GetByParcelOrderedByTime(ctx, parcelID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Parcel created at Warehouse 4, Rotterdam", history[0].Description())

	// Update status and location: one new event naming both facets, plus a
	// notification carrying the deterministic fallback text.
	status := parcel.StatusInTransit
	city := "Utrecht"
	updateCmd, err := commands.NewUpdateParcelCommand(parcelID, parcel.Update{Status: &status, CurrentCity: &city})
	require.NoError(t, err)
	require.NoError(t, updateHandler.Handle(ctx, updateCmd))

	select {
	case <-dispatcher.done:
	case <-time.After(time.Second):
		t.Fatal("notification dispatch did not run")
	}

	history, err = store.TrackingEventRepository().GetByParcelOrderedByTime(ctx, parcelID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Contains(t, history[1].Description(), "Status changed to IN TRANSIT")
	assert.Contains(t, history[1].Description(), "Location updated to")
	assert.Contains(t, history[1].Description(), "Utrecht")

	notifications, err := store.NotificationRepository().GetByUserOrderedByTimeDesc(ctx, recipientID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	fallback := "Your parcel (ID: " + stored.TrackingID().String() + ") is now IN TRANSIT."
	assert.Equal(t, fallback, notifications[0].Message())
	assert.False(t, notifications[0].IsRead())

	mailer.mu.Lock()
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "recipient@example.com", mailer.sent[0].To)
	assert.Equal(t, "Parcel update: "+stored.TrackingID().String()+" - IN TRANSIT", mailer.sent[0].Subject)
	assert.Equal(t, fallback, mailer.sent[0].Body)
	mailer.mu.Unlock()

	// No-op update: same description, no new event, no new notification.
	description := stored.Description()
	noopCmd, err := commands.NewUpdateParcelCommand(parcelID, parcel.Update{Description: &description})
	require.NoError(t, err)
	require.NoError(t, updateHandler.Handle(ctx, noopCmd))

	history, err = store.TrackingEventRepository().GetByParcelOrderedByTime(ctx, parcelID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	notifications, err = store.NotificationRepository().GetByUserOrderedByTimeDesc(ctx, recipientID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)

	// Delete: parcel gone, history cascades, notification survives.
	deleteCmd, err := commands.NewDeleteParcelCommand(parcelID)
	require.NoError(t, err)
	require.NoError(t, deleteHandler.Handle(ctx, deleteCmd))

	_, err = store.ParcelRepository().Get(ctx, parcelID)
	require.Error(t, err)

	history, err = store.TrackingEventRepository().GetByParcelOrderedByTime(ctx, parcelID)
	require.NoError(t, err)
	assert.Empty(t, history)

	notifications, err = store.NotificationRepository().GetByUserOrderedByTimeDesc(ctx, recipientID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1, "notifications are not owned by the parcel and must survive its deletion")
}
