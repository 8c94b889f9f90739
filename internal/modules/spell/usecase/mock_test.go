package usecase

import (
	"context"
	"sync"
	"time"

	"spellcheck-app/internal/modules/spell/domain"
)

// MockSpellChecker モックスペルチェッカー
type MockSpellChecker struct {
	CheckFunc        func(ctx context.Context, text string) (*domain.CheckResult, error)
	ProviderNameFunc func() string

	mu    sync.Mutex
	calls []string
}

func (m *MockSpellChecker) Check(ctx context.Context, text string) (*domain.CheckResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()

	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, text)
	}
	return domain.NewCheckResult(text, text, nil, m.ProviderName()), nil
}

func (m *MockSpellChecker) ProviderName() string {
	if m.ProviderNameFunc != nil {
		return m.ProviderNameFunc()
	}
	return "mock"
}

func (m *MockSpellChecker) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockCacheRepository インメモリのモックキャッシュ
type MockCacheRepository struct {
	GetErr error
	SetErr error

	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	deleted []string
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = expiration
	return nil
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return v, nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}

// MockDictionaryRepository インメモリのモック辞書
type MockDictionaryRepository struct {
	Entries []*domain.DictionaryEntry
	Err     error
}

func (m *MockDictionaryRepository) Upsert(ctx context.Context, entry *domain.DictionaryEntry) error {
	if m.Err != nil {
		return m.Err
	}
	for _, e := range m.Entries {
		if e.Word == entry.Word {
			e.Replacement = entry.Replacement
			return nil
		}
	}
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockDictionaryRepository) FindAll(ctx context.Context) ([]*domain.DictionaryEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entries, nil
}

func (m *MockDictionaryRepository) FindByWord(ctx context.Context, word string) (*domain.DictionaryEntry, error) {
	for _, e := range m.Entries {
		if e.Word == word {
			return e, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockDictionaryRepository) Delete(ctx context.Context, word string) error {
	for i, e := range m.Entries {
		if e.Word == word {
			m.Entries = append(m.Entries[:i], m.Entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

// MockHistoryRepository モック履歴
type MockHistoryRepository struct {
	Records   []*domain.CorrectionRecord
	LastLimit int
}

func (m *MockHistoryRepository) Create(ctx context.Context, record *domain.CorrectionRecord) error {
	m.Records = append(m.Records, record)
	return nil
}

func (m *MockHistoryRepository) FindRecent(ctx context.Context, limit int) ([]*domain.CorrectionRecord, error) {
	m.LastLimit = limit
	return m.Records, nil
}
