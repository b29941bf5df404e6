// file: internals/features/activity_logs/service/activity_recorder.go
package service

import (
	"log"
	"sync"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hrms_backend/internals/features/activity_logs/model"
)

// Event is the audit entry emitted after a mutation commits.
type Event struct {
	UserName     string
	ActionType   string // CREATE | UPDATE | DELETE
	ResourceType string
	ResourceID   string
	ResourceName string
	Description  string
	IPAddress    string
	Status       string
	Metadata     map[string]interface{}
}

// Recorder is the post-commit emission interface controllers call.
// Writes are intentionally not transactional with the primary mutation;
// a crash between the two leaves an un-logged mutation (accepted gap).
type Recorder interface {
	Record(ev Event)
}

/* =========================================================
 * DB-backed recorder (buffered channel + worker)
 * ========================================================= */

type DBRecorder struct {
	db   *gorm.DB
	ch   chan Event
	wg   sync.WaitGroup
	once sync.Once
}

func NewDBRecorder(db *gorm.DB) *DBRecorder {
	r := &DBRecorder{
		db: db,
		ch: make(chan Event, 256),
	}
	r.wg.Add(1)
	go r.worker()
	return r
}

func (r *DBRecorder) Record(ev Event) {
	if ev.Status == "" {
		ev.Status = "success"
	}
	if ev.UserName == "" {
		ev.UserName = "System"
	}
	select {
	case r.ch <- ev:
	default:
		// never block a request on the audit trail
		log.Printf("⚠️ activity log buffer full, dropping %s %s/%s", ev.ActionType, ev.ResourceType, ev.ResourceID)
	}
}

// Close drains the buffer and stops the worker.
func (r *DBRecorder) Close() {
	r.once.Do(func() { close(r.ch) })
	r.wg.Wait()
}

func (r *DBRecorder) worker() {
	defer r.wg.Done()
	for ev := range r.ch {
		if err := r.persist(ev); err != nil {
			log.Printf("activity log write err: %v", err)
		}
	}
}

func (r *DBRecorder) persist(ev Event) error {
	var meta datatypes.JSON
	if len(ev.Metadata) > 0 {
		raw, err := sonic.Marshal(ev.Metadata)
		if err != nil {
			log.Printf("activity log metadata marshal err: %v", err)
		} else {
			meta = datatypes.JSON(raw)
		}
	}

	entry := model.ActivityLogModel{
		ActivityLogUserName:     ev.UserName,
		ActivityLogActionType:   ev.ActionType,
		ActivityLogResourceType: ev.ResourceType,
		ActivityLogResourceID:   ev.ResourceID,
		ActivityLogResourceName: ev.ResourceName,
		ActivityLogDescription:  ev.Description,
		ActivityLogIPAddress:    ev.IPAddress,
		ActivityLogStatus:       ev.Status,
		ActivityLogMetadata:     meta,
	}
	return r.db.Create(&entry).Error
}
