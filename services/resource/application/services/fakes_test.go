package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	pkgcache "github.com/ghuser/communityhub/pkg/cache"
	"github.com/ghuser/communityhub/services/resource/domain"
	"github.com/ghuser/communityhub/services/resource/domain/models"
)

type fakeUploader struct {
	mu      sync.Mutex
	calls   int
	folders []string
	err     error
	next    int
}

func (u *fakeUploader) Upload(_ context.Context, folder string, files []models.UploadFile) ([]string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls++
	u.folders = append(u.folders, folder)
	if u.err != nil {
		return nil, u.err
	}
	urls := make([]string, len(files))
	for i, f := range files {
		u.next++
		urls[i] = fmt.Sprintf("https://img.test/%s/%d-%s", folder, u.next, f.Name)
	}
	return urls, nil
}

type fakePurger struct {
	mu     sync.Mutex
	purged []string
}

func (p *fakePurger) Purge(_ context.Context, urls []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.purged = append(p.purged, urls...)
	return nil
}

func (p *fakePurger) Purged() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.purged...)
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	hits        int
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, collection string, dst any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[collection]
	if !ok {
		return pkgcache.ErrMiss
	}
	c.hits++
	return json.Unmarshal(data, dst)
}

func (c *fakeCache) Set(_ context.Context, collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[collection] = data
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, collections ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, col := range collections {
		delete(c.entries, col)
		c.invalidated = append(c.invalidated, col)
	}
	return nil
}

func raw(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}

func files(names ...string) []models.UploadFile {
	out := make([]models.UploadFile, len(names))
	for i, n := range names {
		out[i] = models.UploadFile{Name: n, ContentType: "image/png", Data: []byte("png")}
	}
	return out
}

var errBoom = fmt.Errorf("%w: boom", domain.ErrUploadFailed)
