package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/identity"
	"github.com/beka-birhanu/vinom-lattice/service/i"
	"github.com/google/uuid"
)

var errBackend = errors.New("backend unavailable")

type memMazeRepo struct {
	sync.Mutex
	records map[uuid.UUID]*dmn.MazeRecord
	saveErr error
	reads   int
}

func newMemMazeRepo() *memMazeRepo {
	return &memMazeRepo{records: map[uuid.UUID]*dmn.MazeRecord{}}
}

func (r *memMazeRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	r.Lock()
	defer r.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[record.ID] = record
	return nil
}

func (r *memMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.Lock()
	defer r.Unlock()
	r.reads++
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return record, nil
}

func (r *memMazeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.records[id]; !ok {
		return dmn.ErrMazeNotFound
	}
	delete(r.records, id)
	return nil
}

type memCache struct {
	sync.Mutex
	records   map[uuid.UUID]*dmn.MazeRecord
	err       error
	deleteErr error
}

func newMemCache() *memCache {
	return &memCache{records: map[uuid.UUID]*dmn.MazeRecord{}}
}

func (c *memCache) Get(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	c.Lock()
	defer c.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	record, ok := c.records[id]
	if !ok {
		return nil, i.ErrCacheMiss
	}
	return record, nil
}

func (c *memCache) Set(_ context.Context, record *dmn.MazeRecord) error {
	c.Lock()
	defer c.Unlock()
	if c.err != nil {
		return c.err
	}
	c.records[record.ID] = record
	return nil
}

func (c *memCache) Delete(_ context.Context, id uuid.UUID) error {
	c.Lock()
	defer c.Unlock()
	if c.deleteErr != nil {
		return c.deleteErr
	}
	delete(c.records, id)
	return c.err
}

type memIndex struct {
	sync.Mutex
	sets map[string]map[string]float64
}

func newMemIndex() *memIndex {
	return &memIndex{sets: map[string]map[string]float64{}}
}

func (x *memIndex) Add(_ context.Context, key string, score float64, member string) error {
	x.Lock()
	defer x.Unlock()
	if x.sets[key] == nil {
		x.sets[key] = map[string]float64{}
	}
	x.sets[key][member] = score
	return nil
}

func (x *memIndex) sorted(key string) []string {
	members := make([]string, 0, len(x.sets[key]))
	for m := range x.sets[key] {
		members = append(members, m)
	}
	sort.Slice(members, func(a, b int) bool {
		sa, sb := x.sets[key][members[a]], x.sets[key][members[b]]
		if sa != sb {
			return sa > sb
		}
		return members[a] > members[b]
	})
	return members
}

func (x *memIndex) Top(_ context.Context, key string, n int64) ([]string, error) {
	x.Lock()
	defer x.Unlock()
	members := x.sorted(key)
	if int64(len(members)) > n {
		members = members[:n]
	}
	return members, nil
}

func (x *memIndex) Remove(_ context.Context, key string, member string) error {
	x.Lock()
	defer x.Unlock()
	delete(x.sets[key], member)
	return nil
}

func (x *memIndex) Trim(_ context.Context, key string, keep int64) error {
	x.Lock()
	defer x.Unlock()
	members := x.sorted(key)
	for n := keep; n < int64(len(members)); n++ {
		delete(x.sets[key], members[n])
	}
	return nil
}

func (x *memIndex) Count(_ context.Context, key string) (int64, error) {
	x.Lock()
	defer x.Unlock()
	return int64(len(x.sets[key])), nil
}

func (x *memIndex) count(key string) int64 {
	n, _ := x.Count(context.Background(), key)
	return n
}

type memUserRepo struct {
	sync.Mutex
	users map[uuid.UUID]*identity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]*identity.User{}}
}

func (r *memUserRepo) Save(user *identity.User) error {
	r.Lock()
	defer r.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) ByID(id uuid.UUID) (*identity.User, error) {
	r.Lock()
	defer r.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, dmn.ErrUserNotFound
}

func (r *memUserRepo) ByUsername(username string) (*identity.User, error) {
	r.Lock()
	defer r.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

type stubTokenizer struct {
	lastClaims map[string]any
}

func (s *stubTokenizer) Generate(claims map[string]any, expTime time.Duration) (string, error) {
	s.lastClaims = claims
	return fmt.Sprintf("token-%s-%s", claims[ClaimUserID], expTime), nil
}

func (s *stubTokenizer) Decode(token string) (map[string]any, error) {
	return s.lastClaims, nil
}

type recordingLogger struct {
	sync.Mutex
	infos, warnings, errors []string
}

func (l *recordingLogger) Info(msg string) {
	l.Lock()
	defer l.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.Lock()
	defer l.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.Lock()
	defer l.Unlock()
	l.errors = append(l.errors, msg)
}
