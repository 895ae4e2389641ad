package booking

import (
	"context"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	catalogRepo "glowbook/database/repository/catalog"
	consultationRepo "glowbook/database/repository/consultation"
	discountRepo "glowbook/database/repository/discount"
	holdRepo "glowbook/database/repository/hold"
	scheduleRepo "glowbook/database/repository/schedule"
	"glowbook/models"

	"github.com/hibiken/asynq"
)

// testNow is the frozen clock used across the suite.
var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeUOW struct{ ctx context.Context }

func (f fakeUOW) Context() context.Context { return f.ctx }

type mockBookingRepo struct {
	CreateFn     func(ctx context.Context, b *models.Booking) error
	GetByIDFn    func(ctx context.Context, id string) (*models.Booking, error)
	UpdateFn     func(ctx context.Context, b *models.Booking) error
	ListActiveFn func(ctx context.Context, professionalID string, from, to time.Time) ([]models.Booking, error)

	Created []*models.Booking
	Updated []*models.Booking
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	m.Created = append(m.Created, b)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, bookingRepo.ErrNotFound
}

func (m *mockBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	m.Updated = append(m.Updated, b)
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, b)
	}
	return nil
}

func (m *mockBookingRepo) ListActiveForProfessional(ctx context.Context, professionalID string, from, to time.Time) ([]models.Booking, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx, professionalID, from, to)
	}
	return nil, nil
}

func (m *mockBookingRepo) RunTransaction(ctx context.Context, fn func(uow bookingRepo.UnitOfWork) error) error {
	return fn(fakeUOW{ctx: ctx})
}

type mockHoldRepo struct {
	holds   map[string]*models.Hold
	Deleted []string
}

func newMockHoldRepo() *mockHoldRepo {
	return &mockHoldRepo{holds: make(map[string]*models.Hold)}
}

func (m *mockHoldRepo) Save(ctx context.Context, hold *models.Hold) error {
	m.holds[hold.ID] = hold
	return nil
}

func (m *mockHoldRepo) Get(ctx context.Context, holdID string) (*models.Hold, error) {
	if h, ok := m.holds[holdID]; ok {
		return h, nil
	}
	return nil, holdRepo.ErrNotFound
}

func (m *mockHoldRepo) Delete(ctx context.Context, holdID string) error {
	delete(m.holds, holdID)
	m.Deleted = append(m.Deleted, holdID)
	return nil
}

type mockScheduleRepo struct {
	GetLocationFn        func(ctx context.Context, locationID, professionalID string) (*models.Location, error)
	FindLocationByTypeFn func(ctx context.Context, professionalID string, t models.LocationType) (*models.Location, error)
	GetScheduleFn        func(ctx context.Context, locationID string) (*models.LocationSchedule, error)
	ListBlocksFn         func(ctx context.Context, professionalID string, from, to time.Time) ([]models.CalendarBlock, error)
	GetProfessionalFn    func(ctx context.Context, professionalID string) (*models.Professional, error)
}

func (m *mockScheduleRepo) GetLocation(ctx context.Context, locationID, professionalID string) (*models.Location, error) {
	if m.GetLocationFn != nil {
		return m.GetLocationFn(ctx, locationID, professionalID)
	}
	return nil, scheduleRepo.ErrNotFound
}

func (m *mockScheduleRepo) FindLocationByType(ctx context.Context, professionalID string, t models.LocationType) (*models.Location, error) {
	if m.FindLocationByTypeFn != nil {
		return m.FindLocationByTypeFn(ctx, professionalID, t)
	}
	return nil, scheduleRepo.ErrNotFound
}

func (m *mockScheduleRepo) GetSchedule(ctx context.Context, locationID string) (*models.LocationSchedule, error) {
	if m.GetScheduleFn != nil {
		return m.GetScheduleFn(ctx, locationID)
	}
	return nil, scheduleRepo.ErrNotFound
}

func (m *mockScheduleRepo) ListBlocks(ctx context.Context, professionalID string, from, to time.Time) ([]models.CalendarBlock, error) {
	if m.ListBlocksFn != nil {
		return m.ListBlocksFn(ctx, professionalID, from, to)
	}
	return nil, nil
}

func (m *mockScheduleRepo) CreateBlock(ctx context.Context, block *models.CalendarBlock) error {
	return nil
}

func (m *mockScheduleRepo) DeleteBlock(ctx context.Context, blockID, professionalID string) error {
	return nil
}

func (m *mockScheduleRepo) GetProfessional(ctx context.Context, professionalID string) (*models.Professional, error) {
	if m.GetProfessionalFn != nil {
		return m.GetProfessionalFn(ctx, professionalID)
	}
	return nil, scheduleRepo.ErrNotFound
}

type mockConsultationRepo struct {
	approvals map[string]*models.ConsultationApproval
}

func newMockConsultationRepo() *mockConsultationRepo {
	return &mockConsultationRepo{approvals: make(map[string]*models.ConsultationApproval)}
}

func (m *mockConsultationRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.ConsultationApproval, error) {
	if a, ok := m.approvals[bookingID]; ok {
		return a, nil
	}
	return nil, consultationRepo.ErrNotFound
}

func (m *mockConsultationRepo) Upsert(ctx context.Context, approval *models.ConsultationApproval) error {
	m.approvals[approval.BookingID] = approval
	return nil
}

type mockDiscountRepo struct {
	settings map[string]*models.LastMinuteSettings
}

func newMockDiscountRepo() *mockDiscountRepo {
	return &mockDiscountRepo{settings: make(map[string]*models.LastMinuteSettings)}
}

func (m *mockDiscountRepo) GetSettings(ctx context.Context, professionalID string) (*models.LastMinuteSettings, error) {
	if s, ok := m.settings[professionalID]; ok {
		return s, nil
	}
	return nil, discountRepo.ErrNotFound
}

func (m *mockDiscountRepo) SaveSettings(ctx context.Context, settings *models.LastMinuteSettings) error {
	m.settings[settings.ProfessionalID] = settings
	return nil
}

type mockMediaRepo struct {
	counts    map[string]map[models.MediaKind]int64
	aftercare map[string]bool
}

func newMockMediaRepo() *mockMediaRepo {
	return &mockMediaRepo{
		counts:    make(map[string]map[models.MediaKind]int64),
		aftercare: make(map[string]bool),
	}
}

func (m *mockMediaRepo) addAsset(bookingID string, kind models.MediaKind) {
	if m.counts[bookingID] == nil {
		m.counts[bookingID] = make(map[models.MediaKind]int64)
	}
	m.counts[bookingID][kind]++
}

func (m *mockMediaRepo) CreateAsset(ctx context.Context, asset *models.MediaAsset) error {
	m.addAsset(asset.BookingID, asset.Kind)
	return nil
}

func (m *mockMediaRepo) CountAssets(ctx context.Context, bookingID string, kind models.MediaKind) (int64, error) {
	return m.counts[bookingID][kind], nil
}

func (m *mockMediaRepo) CreateAftercareSummary(ctx context.Context, summary *models.AftercareSummary) error {
	m.aftercare[summary.BookingID] = true
	return nil
}

func (m *mockMediaRepo) HasAftercareSummary(ctx context.Context, bookingID string) (bool, error) {
	return m.aftercare[bookingID], nil
}

type mockCatalogRepo struct {
	offerings map[string]*models.Offering
}

func newMockCatalogRepo(offerings ...*models.Offering) *mockCatalogRepo {
	m := &mockCatalogRepo{offerings: make(map[string]*models.Offering)}
	for _, o := range offerings {
		m.offerings[o.ID] = o
	}
	return m
}

func (m *mockCatalogRepo) GetOffering(ctx context.Context, offeringID string) (*models.Offering, error) {
	if o, ok := m.offerings[offeringID]; ok {
		return o, nil
	}
	return nil, catalogRepo.ErrNotFound
}

func (m *mockCatalogRepo) GetOfferingForService(ctx context.Context, professionalID, serviceID string) (*models.Offering, error) {
	for _, o := range m.offerings {
		if o.ProfessionalID == professionalID && o.ServiceID == serviceID {
			return o, nil
		}
	}
	return nil, catalogRepo.ErrNotFound
}

type notifierCall struct {
	Recipient string
	TargetID  string
	Template  string
}

type mockNotifier struct {
	Calls      []notifierCall
	FailClient bool
}

func (m *mockNotifier) SendClientMessage(ctx context.Context, clientID, template string, data map[string]string) error {
	m.Calls = append(m.Calls, notifierCall{Recipient: "client", TargetID: clientID, Template: template})
	if m.FailClient {
		return context.DeadlineExceeded
	}
	return nil
}

func (m *mockNotifier) SendProfessionalMessage(ctx context.Context, professionalID, template string, data map[string]string) error {
	m.Calls = append(m.Calls, notifierCall{Recipient: "professional", TargetID: professionalID, Template: template})
	return nil
}

type mockReminderQueue struct {
	Tasks []*asynq.Task
}

func (m *mockReminderQueue) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.Tasks = append(m.Tasks, task)
	return &asynq.TaskInfo{}, nil
}

// testService wires a service around mocks with the frozen clock.
func newTestService() (*DefaultBookingService, *mockBookingRepo, *mockHoldRepo, *mockScheduleRepo, *mockConsultationRepo, *mockDiscountRepo, *mockMediaRepo, *mockCatalogRepo) {
	bookings := &mockBookingRepo{}
	holds := newMockHoldRepo()
	schedules := &mockScheduleRepo{}
	consultations := newMockConsultationRepo()
	discounts := newMockDiscountRepo()
	media := newMockMediaRepo()
	catalog := newMockCatalogRepo()

	svc := &DefaultBookingService{
		Bookings:      bookings,
		Holds:         holds,
		Schedules:     schedules,
		Consultations: consultations,
		Discounts:     discounts,
		Media:         media,
		Catalog:       catalog,

		Notifier:  &mockNotifier{},
		Reminders: &mockReminderQueue{},

		HoldTTL:             10 * time.Minute,
		ReminderLeadMinutes: 120,

		Now: func() time.Time { return testNow },
	}
	return svc, bookings, holds, schedules, consultations, discounts, media, catalog
}
