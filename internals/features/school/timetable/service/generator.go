// file: internals/features/school/timetable/service/generator.go
package service

import (
	"context"

	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

/* =======================================================
   Auto-Generator (greedy)
   - snapshot sekali di awal: pool CSST + layout periode + slot
     existing sekolah (untuk index kesibukan guru)
   - per hari: urutan pool di-shuffle, kursor rotasi dipakai
     lintas hari supaya mapel awal tidak selalu kebagian pagi
   - guru sibuk di (hari, jam mulai) pada section LAIN → coba
     guru berikutnya di pool; semua sibuk → mapel berikutnya;
     pool habis → "Free Period"
   ======================================================= */

// CandidateSlot satu sel hasil generator. Sel break dan Free Period
// ikut dikembalikan supaya preview utuh, tapi keduanya tidak ikut
// disimpan saat commit.
type CandidateSlot struct {
	SectionID    uuid.UUID  `json:"section_id"`
	SubjectID    *uuid.UUID `json:"subject_id,omitempty"`
	TeacherID    *uuid.UUID `json:"teacher_id,omitempty"`
	SubjectName  string     `json:"subject_name"`
	TeacherName  string     `json:"teacher_name,omitempty"`
	DayOfWeek    int        `json:"day_of_week"`
	DayName      string     `json:"day_name"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	PeriodLabel  string     `json:"period_label"`
	IsBreak      bool       `json:"is_break"`
	IsFreePeriod bool       `json:"is_free_period"`
}

type busyKey struct {
	teacherID uuid.UUID
	day       int
	startTime string
}

// GenerateSectionTimetable menyusun draft jadwal seminggu penuh untuk
// satu section. Murni baca: tidak ada tulis ke storage; commit jalan
// terpisah lewat BulkReplaceSection.
func (s *TimetableService) GenerateSectionTimetable(ctx context.Context, schoolID, sectionID uuid.UUID) ([]CandidateSlot, error) {
	pools, err := s.pools.ListSectionPools(ctx, schoolID, sectionID)
	if err != nil {
		return nil, &GenerationError{Cause: err}
	}
	layout, err := s.layout.PeriodLayout(ctx, schoolID)
	if err != nil {
		return nil, &GenerationError{Cause: err}
	}
	existing, err := s.store.ListBySchool(ctx, schoolID)
	if err != nil {
		return nil, &GenerationError{Cause: err}
	}

	// Index kesibukan: guru dianggap sibuk kalau sudah punya slot
	// dengan jam mulai persis sama di section lain.
	busy := make(map[busyKey]struct{}, len(existing))
	for i := range existing {
		sl := &existing[i]
		if sl.TimetableSlotSectionID == sectionID {
			continue
		}
		busy[busyKey{sl.TimetableSlotTeacherID, sl.TimetableSlotDayOfWeek, sl.TimetableSlotStartTime}] = struct{}{}
	}

	var out []CandidateSlot
	cursor := 0

	for _, day := range constants.WeekDays {
		dayName := constants.DayNames[day]

		// Urutan mapel diacak ulang tiap hari.
		order := make([]int, len(pools))
		for i := range order {
			order[i] = i
		}
		s.shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, p := range layout {
			if p.IsBreak {
				out = append(out, CandidateSlot{
					SectionID:   sectionID,
					SubjectName: p.Label,
					DayOfWeek:   day,
					DayName:     dayName,
					StartTime:   p.StartTime,
					EndTime:     p.EndTime,
					PeriodLabel: p.Label,
					IsBreak:     true,
				})
				continue
			}

			cell := s.pickCell(pools, order, &cursor, busy, day, p.StartTime)
			if cell == nil {
				out = append(out, CandidateSlot{
					SectionID:    sectionID,
					SubjectName:  constants.FreePeriodLabel,
					DayOfWeek:    day,
					DayName:      dayName,
					StartTime:    p.StartTime,
					EndTime:      p.EndTime,
					PeriodLabel:  p.Label,
					IsFreePeriod: true,
				})
				continue
			}

			cell.SectionID = sectionID
			cell.DayOfWeek = day
			cell.DayName = dayName
			cell.StartTime = p.StartTime
			cell.EndTime = p.EndTime
			cell.PeriodLabel = p.Label
			out = append(out, *cell)
		}
	}
	return out, nil
}

// pickCell jalan memutar dari kursor: mapel pertama yang punya guru
// free dipakai, kursor maju satu supaya giliran berikutnya bergeser.
func (s *TimetableService) pickCell(pools []SubjectTeacherPool, order []int, cursor *int, busy map[busyKey]struct{}, day int, startTime string) *CandidateSlot {
	n := len(pools)
	if n == 0 {
		return nil
	}
	for step := 0; step < n; step++ {
		pool := &pools[order[(*cursor+step)%n]]
		for _, tch := range pool.Teachers {
			if _, taken := busy[busyKey{tch.TeacherID, day, startTime}]; taken {
				continue
			}
			*cursor = (*cursor + step + 1) % n
			subjectID := pool.SubjectID
			teacherID := tch.TeacherID
			return &CandidateSlot{
				SubjectID:   &subjectID,
				TeacherID:   &teacherID,
				SubjectName: pool.SubjectName,
				TeacherName: tch.TeacherName,
			}
		}
	}
	return nil
}

// CommitCandidates menyaring sel break/Free Period lalu menyimpan
// sisanya lewat BulkReplaceSection.
func (s *TimetableService) CommitCandidates(ctx context.Context, schoolID, sectionID uuid.UUID, sectionName string, cells []CandidateSlot) (int, error) {
	items := make([]SlotInput, 0, len(cells))
	for i := range cells {
		c := &cells[i]
		if c.IsBreak || c.IsFreePeriod {
			continue
		}
		if c.SubjectID == nil || c.TeacherID == nil {
			continue
		}
		items = append(items, SlotInput{
			SectionID:   sectionID,
			SubjectID:   *c.SubjectID,
			TeacherID:   *c.TeacherID,
			SectionName: sectionName,
			SubjectName: c.SubjectName,
			TeacherName: c.TeacherName,
			DayOfWeek:   c.DayOfWeek,
			StartTime:   c.StartTime,
			EndTime:     c.EndTime,
		})
	}
	return s.BulkReplaceSection(ctx, schoolID, sectionID, items)
}
