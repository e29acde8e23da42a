// file: internals/features/school/timetable/service/notifier.go
package service

import (
	"context"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	ttModel "schoolku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Notifikasi perubahan jadwal
   - LogNotifier  : default, cukup log lokal
   - RedisNotifier: publish ke channel timetable:<school_id>
     supaya frontend bisa refresh realtime
   ======================================================= */

type ScheduleNotifier interface {
	SlotCreated(ctx context.Context, schoolID uuid.UUID, slot *ttModel.TimetableSlotModel)
	SlotDeleted(ctx context.Context, schoolID, slotID uuid.UUID)
	SectionReplaced(ctx context.Context, schoolID, sectionID uuid.UUID, total int)
}

type LogNotifier struct{}

func (LogNotifier) SlotCreated(_ context.Context, schoolID uuid.UUID, slot *ttModel.TimetableSlotModel) {
	log.Printf("[TIMETABLE] slot dibuat school=%s section=%s %s %s-%s", schoolID, slot.TimetableSlotSectionID, slot.TimetableSlotSectionName, slot.TimetableSlotStartTime, slot.TimetableSlotEndTime)
}

func (LogNotifier) SlotDeleted(_ context.Context, schoolID, slotID uuid.UUID) {
	log.Printf("[TIMETABLE] slot dihapus school=%s slot=%s", schoolID, slotID)
}

func (LogNotifier) SectionReplaced(_ context.Context, schoolID, sectionID uuid.UUID, total int) {
	log.Printf("[TIMETABLE] jadwal section diganti school=%s section=%s total=%d", schoolID, sectionID, total)
}

type RedisNotifier struct {
	Client *redis.Client
}

func NewRedisNotifier(redisURL string) (*RedisNotifier, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisNotifier{Client: redis.NewClient(opt)}, nil
}

type scheduleEvent struct {
	Event     string     `json:"event"`
	SchoolID  uuid.UUID  `json:"school_id"`
	SlotID    *uuid.UUID `json:"slot_id,omitempty"`
	SectionID *uuid.UUID `json:"section_id,omitempty"`
	Total     int        `json:"total,omitempty"`
}

func (n *RedisNotifier) publish(ctx context.Context, ev scheduleEvent) {
	payload, err := sonic.Marshal(ev)
	if err != nil {
		log.Printf("[TIMETABLE] gagal marshal event: %v", err)
		return
	}
	// Publish best-effort; gagal publish tidak membatalkan mutasi.
	if err := n.Client.Publish(ctx, "timetable:"+ev.SchoolID.String(), payload).Err(); err != nil {
		log.Printf("[TIMETABLE] gagal publish redis: %v", err)
	}
}

func (n *RedisNotifier) SlotCreated(ctx context.Context, schoolID uuid.UUID, slot *ttModel.TimetableSlotModel) {
	id := slot.TimetableSlotID
	sec := slot.TimetableSlotSectionID
	n.publish(ctx, scheduleEvent{Event: "slot_created", SchoolID: schoolID, SlotID: &id, SectionID: &sec})
}

func (n *RedisNotifier) SlotDeleted(ctx context.Context, schoolID, slotID uuid.UUID) {
	n.publish(ctx, scheduleEvent{Event: "slot_deleted", SchoolID: schoolID, SlotID: &slotID})
}

func (n *RedisNotifier) SectionReplaced(ctx context.Context, schoolID, sectionID uuid.UUID, total int) {
	n.publish(ctx, scheduleEvent{Event: "section_replaced", SchoolID: schoolID, SectionID: &sectionID, Total: total})
}
