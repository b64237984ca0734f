package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"currency-assistant/internal/domain"

	"github.com/shopspring/decimal"
)

// Mock implementations for testing

// MockLineClient implements output.LineClient for testing
type MockLineClient struct {
	ReplyMessageFunc func(request domain.LineReplyMessageRequest) (*domain.LineMessageResponse, error)
	PushMessageFunc  func(request domain.LinePushMessageRequest) (*domain.LineMessageResponse, error)

	// Captured values for assertions
	LastReplyRequest *domain.LineReplyMessageRequest
	LastPushRequest  *domain.LinePushMessageRequest

	ReplyRequests []domain.LineReplyMessageRequest
}

func (m *MockLineClient) ReplyMessage(request domain.LineReplyMessageRequest) (*domain.LineMessageResponse, error) {
	m.LastReplyRequest = &request
	m.ReplyRequests = append(m.ReplyRequests, request)
	if m.ReplyMessageFunc != nil {
		return m.ReplyMessageFunc(request)
	}
	return &domain.LineMessageResponse{Status: "ok"}, nil
}

func (m *MockLineClient) PushMessage(request domain.LinePushMessageRequest) (*domain.LineMessageResponse, error) {
	m.LastPushRequest = &request
	if m.PushMessageFunc != nil {
		return m.PushMessageFunc(request)
	}
	return &domain.LineMessageResponse{Status: "ok"}, nil
}

// MockConversationEngine implements input.ConversationEngine for testing
type MockConversationEngine struct {
	HandleMessageFunc func(ctx context.Context, userID, text string) domain.Reply
	GreetingFunc      func(userID string) domain.Reply
	ResetFunc         func(userID string) error

	Messages    []string
	ResetUserID string
}

func (m *MockConversationEngine) HandleMessage(ctx context.Context, userID, text string) domain.Reply {
	m.Messages = append(m.Messages, text)
	if m.HandleMessageFunc != nil {
		return m.HandleMessageFunc(ctx, userID, text)
	}
	return domain.NewReply("ok")
}

func (m *MockConversationEngine) Greeting(userID string) domain.Reply {
	if m.GreetingFunc != nil {
		return m.GreetingFunc(userID)
	}
	return domain.NewReply("hello", CommandStart)
}

func (m *MockConversationEngine) Reset(userID string) error {
	m.ResetUserID = userID
	if m.ResetFunc != nil {
		return m.ResetFunc(userID)
	}
	return nil
}

// MockCurrencyRepository implements output.CurrencyRepository for testing
type MockCurrencyRepository struct {
	ExistsFunc     func(ctx context.Context, currencyName string) (bool, error)
	InsertFunc     func(ctx context.Context, currencyName string, rate decimal.Decimal) (*domain.Currency, error)
	UpdateFunc     func(ctx context.Context, currencyName string, rate decimal.Decimal) (*domain.Currency, error)
	DeleteFunc     func(ctx context.Context, currencyName string) error
	ListFunc       func(ctx context.Context) ([]domain.Currency, error)
	FindByNameFunc func(ctx context.Context, currencyName string) (*domain.Currency, error)
	PingFunc       func(ctx context.Context) error

	// Names the repository was called with
	Names []string
}

func (m *MockCurrencyRepository) Exists(ctx context.Context, currencyName string) (bool, error) {
	m.Names = append(m.Names, currencyName)
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, currencyName)
	}
	return false, nil
}

func (m *MockCurrencyRepository) Insert(ctx context.Context, currencyName string, rate decimal.Decimal) (*domain.Currency, error) {
	m.Names = append(m.Names, currencyName)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, currencyName, rate)
	}
	return &domain.Currency{CurrencyName: currencyName, Rate: rate}, nil
}

func (m *MockCurrencyRepository) Update(ctx context.Context, currencyName string, rate decimal.Decimal) (*domain.Currency, error) {
	m.Names = append(m.Names, currencyName)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, currencyName, rate)
	}
	return &domain.Currency{CurrencyName: currencyName, Rate: rate}, nil
}

func (m *MockCurrencyRepository) Delete(ctx context.Context, currencyName string) error {
	m.Names = append(m.Names, currencyName)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, currencyName)
	}
	return nil
}

func (m *MockCurrencyRepository) List(ctx context.Context) ([]domain.Currency, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockCurrencyRepository) FindByName(ctx context.Context, currencyName string) (*domain.Currency, error) {
	m.Names = append(m.Names, currencyName)
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, currencyName)
	}
	return nil, domain.ErrCurrencyNotFound
}

func (m *MockCurrencyRepository) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// fakeBackend plays both currency services over an in-memory table.
// It implements output.CurrencyManagerClient and output.CurrencyDataClient.
type fakeBackend struct {
	mu    sync.Mutex
	rates map[string]decimal.Decimal // keyed as stored, matched case-insensitively
	calls []string

	// failWith makes every call fail with this error
	failWith error
	// beforeCall runs before an operation touches the table, without the lock held
	beforeCall func(operation string)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{rates: make(map[string]decimal.Decimal)}
}

func (f *fakeBackend) seed(name, rate string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rates[name] = decimal.RequireFromString(rate)
}

func (f *fakeBackend) remove(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if key, ok := f.keyLocked(name); ok {
		delete(f.rates, key)
	}
}

func (f *fakeBackend) rate(name string) (decimal.Decimal, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key, ok := f.keyLocked(name)
	if !ok {
		return decimal.Zero, false
	}
	return f.rates[key], true
}

func (f *fakeBackend) callCount(operation string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, c := range f.calls {
		if c == operation {
			count++
		}
	}
	return count
}

func (f *fakeBackend) keyLocked(name string) (string, bool) {
	for key := range f.rates {
		if domain.SameCurrency(key, name) {
			return key, true
		}
	}
	return "", false
}

func (f *fakeBackend) begin(operation string) error {
	if f.beforeCall != nil {
		f.beforeCall(operation)
	}
	f.mu.Lock()
	f.calls = append(f.calls, operation)
	f.mu.Unlock()
	return f.failWith
}

func (f *fakeBackend) Load(ctx context.Context, currencyName string, rate decimal.Decimal) error {
	if err := f.begin("load"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.keyLocked(currencyName); ok {
		return fmt.Errorf("%w: %s", domain.ErrCurrencyExists, currencyName)
	}
	f.rates[currencyName] = rate
	return nil
}

func (f *fakeBackend) UpdateCurrency(ctx context.Context, currencyName string, rate decimal.Decimal) error {
	if err := f.begin("update"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key, ok := f.keyLocked(currencyName)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, currencyName)
	}
	f.rates[key] = rate
	return nil
}

func (f *fakeBackend) DeleteCurrency(ctx context.Context, currencyName string) error {
	if err := f.begin("delete"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key, ok := f.keyLocked(currencyName)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, currencyName)
	}
	delete(f.rates, key)
	return nil
}

func (f *fakeBackend) ListCurrencies(ctx context.Context) ([]domain.CurrencyResponse, error) {
	if err := f.begin("list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]domain.CurrencyResponse, 0, len(f.rates))
	for name, rate := range f.rates {
		list = append(list, domain.CurrencyResponse{CurrencyName: name, Rate: rate})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CurrencyName < list[j].CurrencyName })
	return list, nil
}

func (f *fakeBackend) Convert(ctx context.Context, currencyName string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := f.begin("convert"); err != nil {
		return decimal.Zero, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key, ok := f.keyLocked(currencyName)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, currencyName)
	}
	return domain.ConvertAmount(amount, f.rates[key]), nil
}

// fakeSessionStore implements output.SessionStore over a plain map
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.ConversationSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*domain.ConversationSession)}
}

func (s *fakeSessionStore) GetSession(userID string) (*domain.ConversationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[userID], nil
}

func (s *fakeSessionStore) UpdateSession(session *domain.ConversationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.UserID] = session
	return nil
}

func (s *fakeSessionStore) DeleteSession(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

// state returns the stored state of a user, idle when nothing is stored
func (s *fakeSessionStore) state(userID string) domain.ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[userID]; ok {
		return session.State
	}
	return domain.StateIdle
}

func (s *fakeSessionStore) value(userID string, key domain.SessionKey) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[userID]; ok {
		return session.Value(key)
	}
	return ""
}
