// file: internals/features/school/timetable/service/mutator.go
package service

import (
	"context"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	ttModel "schoolku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Slot Mutator
   - AddSlot           : validasi → cek bentrok → insert, satu tx
   - DeleteSlot        : hard delete per id
   - BulkReplaceSection: wipe + insert batch, satu tx
   ======================================================= */

// SlotInput kandidat slot dari controller, snapshot nama sudah
// di-resolve sebelum masuk service.
type SlotInput struct {
	SectionID   uuid.UUID
	SubjectID   uuid.UUID
	TeacherID   uuid.UUID
	SectionName string
	SubjectName string
	TeacherName string
	Room        *string
	DayOfWeek   int
	StartTime   string
	EndTime     string
}

func validateCandidate(in *SlotInput) error {
	if in.DayOfWeek < constants.DayMonday || in.DayOfWeek > constants.DaySunday {
		return &ValidationError{Field: "day_of_week", Reason: "hari harus 1 (Senin) sampai 7 (Minggu)"}
	}
	if !ValidTimeString(in.StartTime) {
		return &ValidationError{Field: "start_time", Reason: "format jam harus HH:MM 24 jam"}
	}
	if !ValidTimeString(in.EndTime) {
		return &ValidationError{Field: "end_time", Reason: "format jam harus HH:MM 24 jam"}
	}
	if MinutesOfDay(in.StartTime) >= MinutesOfDay(in.EndTime) {
		return &ValidationError{Field: "end_time", Reason: "jam selesai harus setelah jam mulai"}
	}
	return nil
}

// AddSlot menambah satu slot. Scan bentrok dan insert berjalan dalam
// satu transaksi; unique index section+hari+jam jadi pagar terakhir
// kalau dua request lolos scan bersamaan (muncul sbg 23505).
func (s *TimetableService) AddSlot(ctx context.Context, schoolID uuid.UUID, in SlotInput) (*ttModel.TimetableSlotModel, error) {
	if err := validateCandidate(&in); err != nil {
		return nil, err
	}

	var created *ttModel.TimetableSlotModel
	err := s.store.Transaction(ctx, func(tx SlotStore) error {
		txSvc := s.withStore(tx)
		report, err := txSvc.CheckSlotConflicts(ctx, conflictQuery{
			SchoolID:  schoolID,
			SectionID: in.SectionID,
			TeacherID: in.TeacherID,
			Room:      in.Room,
			DayOfWeek: in.DayOfWeek,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
		if err != nil {
			return err
		}
		if report.HasConflict() {
			return &ConflictError{Report: report}
		}

		slot := newSlotModel(schoolID, &in)
		if err := tx.Create(ctx, slot); err != nil {
			return err
		}
		created = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.SlotCreated(ctx, schoolID, created)
	return created, nil
}

// ValidateSlot dry-run Conflict Checker untuk form edit/preview.
// excludeSlotID mengabaikan slot yang sedang diedit.
func (s *TimetableService) ValidateSlot(ctx context.Context, schoolID uuid.UUID, in SlotInput, excludeSlotID *uuid.UUID) (*ConflictReport, error) {
	if err := validateCandidate(&in); err != nil {
		return nil, err
	}
	return s.CheckSlotConflicts(ctx, conflictQuery{
		SchoolID:      schoolID,
		SectionID:     in.SectionID,
		TeacherID:     in.TeacherID,
		Room:          in.Room,
		DayOfWeek:     in.DayOfWeek,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		ExcludeSlotID: excludeSlotID,
	})
}

// DeleteSlot hard delete. Idempoten di level HTTP: id yang sudah
// hilang dilaporkan ErrSlotNotFound, bukan error storage.
func (s *TimetableService) DeleteSlot(ctx context.Context, schoolID, slotID uuid.UUID) error {
	rows, err := s.store.DeleteByID(ctx, schoolID, slotID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSlotNotFound
	}
	s.notifier.SlotDeleted(ctx, schoolID, slotID)
	return nil
}

// BulkReplaceSection mengganti seluruh jadwal satu section secara
// atomik: wipe lalu insert batch dalam satu transaksi, jadwal lama
// selamat kalau insert gagal. Validasi bentrok antar-resource default
// mati (draft generator boleh disimpan dulu); nyalakan lewat
// TIMETABLE_VALIDATE_BULK.
func (s *TimetableService) BulkReplaceSection(ctx context.Context, schoolID, sectionID uuid.UUID, items []SlotInput) (int, error) {
	for i := range items {
		items[i].SectionID = sectionID
		if err := validateCandidate(&items[i]); err != nil {
			return 0, err
		}
	}

	err := s.store.Transaction(ctx, func(tx SlotStore) error {
		if _, err := tx.DeleteBySection(ctx, schoolID, sectionID); err != nil {
			return err
		}

		if s.ValidateOnBulkReplace {
			txSvc := s.withStore(tx)
			for i := range items {
				in := &items[i]
				report, err := txSvc.CheckSlotConflicts(ctx, conflictQuery{
					SchoolID:      schoolID,
					SectionID:     in.SectionID,
					TeacherID:     in.TeacherID,
					Room:          in.Room,
					DayOfWeek:     in.DayOfWeek,
					StartTime:     in.StartTime,
					EndTime:       in.EndTime,
					IgnoreSection: &sectionID,
				})
				if err != nil {
					return err
				}
				if report.HasConflict() {
					return &ConflictError{Report: report}
				}
			}
		}

		if len(items) == 0 {
			return nil
		}
		slots := make([]ttModel.TimetableSlotModel, 0, len(items))
		for i := range items {
			slots = append(slots, *newSlotModel(schoolID, &items[i]))
		}
		return tx.CreateBatch(ctx, slots)
	})
	if err != nil {
		return 0, err
	}

	s.notifier.SectionReplaced(ctx, schoolID, sectionID, len(items))
	return len(items), nil
}

// withStore salinan service yang terikat ke store transaksi.
func (s *TimetableService) withStore(store SlotStore) *TimetableService {
	cp := *s
	cp.store = store
	return &cp
}

func newSlotModel(schoolID uuid.UUID, in *SlotInput) *ttModel.TimetableSlotModel {
	return &ttModel.TimetableSlotModel{
		TimetableSlotSchoolID:    schoolID,
		TimetableSlotSectionID:   in.SectionID,
		TimetableSlotSubjectID:   in.SubjectID,
		TimetableSlotTeacherID:   in.TeacherID,
		TimetableSlotSectionName: in.SectionName,
		TimetableSlotSubjectName: in.SubjectName,
		TimetableSlotTeacherName: in.TeacherName,
		TimetableSlotRoom:        in.Room,
		TimetableSlotDayOfWeek:   in.DayOfWeek,
		TimetableSlotStartTime:   in.StartTime,
		TimetableSlotEndTime:     in.EndTime,
	}
}
