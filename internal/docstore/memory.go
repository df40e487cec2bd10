package docstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is a thread-safe in-process Store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
	unique      map[string][]string
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithUniqueField rejects inserts into collection that repeat a non-empty
// string value of field, mirroring a unique index.
func WithUniqueField(collection, field string) MemoryOption {
	return func(m *MemoryStore) {
		m.unique[collection] = append(m.unique[collection], field)
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{
		collections: make(map[string]*memoryCollection),
		unique:      make(map[string][]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryStore) Collection(name string) Collection {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.collections[name]
	if !ok {
		c = &memoryCollection{name: name, index: make(map[string]int), unique: m.unique[name]}
		m.collections[name] = c
	}
	return c
}

func (m *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

func (m *MemoryStore) Close() error { return nil }

type memoryCollection struct {
	mu     sync.RWMutex
	name   string
	ids    []string
	docs   []Document
	index  map[string]int
	unique []string
}

func (c *memoryCollection) FindOne(ctx context.Context, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c.read(pos)
}

func (c *memoryCollection) Find(ctx context.Context, f Filter) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Document, 0)
	for pos := range c.docs {
		doc, err := c.read(pos)
		if err != nil {
			return nil, err
		}
		if f.Match(doc) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id, body := splitID(doc)
	stored, err := body.Clone()
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.index[id]; exists {
		return "", ErrDuplicate
	}
	for _, field := range c.unique {
		v, ok := stored.String(field)
		if !ok || v == "" {
			continue
		}
		for _, other := range c.docs {
			if ov, _ := other.String(field); ov == v {
				return "", ErrDuplicate
			}
		}
	}

	c.index[id] = len(c.docs)
	c.ids = append(c.ids, id)
	c.docs = append(c.docs, stored)
	return id, nil
}

func (c *memoryCollection) UpdateOne(ctx context.Context, id string, set Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	patch, err := set.Clone()
	if err != nil {
		return fmt.Errorf("encode update: %w", err)
	}
	delete(patch, IDField)

	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range patch {
		c.docs[pos][k] = v
	}
	return nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return ErrNotFound
	}
	c.ids = append(c.ids[:pos], c.ids[pos+1:]...)
	c.docs = append(c.docs[:pos], c.docs[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.ids); i++ {
		c.index[c.ids[i]] = i
	}
	return nil
}

// read returns a copy of the document at pos with its identifier set.
// Callers hold c.mu.
func (c *memoryCollection) read(pos int) (Document, error) {
	doc, err := c.docs[pos].Clone()
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	doc[IDField] = c.ids[pos]
	return doc, nil
}
