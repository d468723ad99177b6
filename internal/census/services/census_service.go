package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	auditModels "github.com/janakpur-hospital/census-backend/internal/audit/models"
	auditServices "github.com/janakpur-hospital/census-backend/internal/audit/services"
	"github.com/janakpur-hospital/census-backend/internal/census/models"
	"github.com/janakpur-hospital/census-backend/internal/departments"
)

const entryColumns = `id, department, date, previous_patients,
	admissions, referrals_in, department_transfers_in,
	recovered, lama, absconded, referred_out, not_improved, deaths,
	ot_cases, total_transfers_in, total_transfers_out, current_patients,
	created_by, created_at, updated_at, is_locked`

type CensusService struct {
	DB       *sql.DB
	Registry *departments.Registry
}

func NewCensusService(db *sql.DB, registry *departments.Registry) *CensusService {
	return &CensusService{DB: db, Registry: registry}
}

// SubmitCensus validates and persists one day's census for a
// department. The entry insert and its CREATE audit row share one
// transaction; if the audit write fails the entry is rolled back
// rather than silently losing the trail. A duplicate (department,
// date) pair surfaces as ErrDuplicateEntry via the table's unique
// constraint, which is the only concurrency control on the write path.
func (s *CensusService) SubmitCensus(in models.CensusFormInput, userID string) (*models.CensusEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if !s.Registry.IsValidDepartment(in.Department) {
		return nil, ErrUnknownDepartment
	}

	totals := models.DeriveTotals(in)

	entry := models.CensusEntry{
		ID:                    uuid.NewString(),
		Department:            in.Department,
		Date:                  in.Date,
		PreviousPatients:      in.PreviousPatients,
		Admissions:            in.Admissions,
		ReferralsIn:           in.ReferralsIn,
		DepartmentTransfersIn: in.DepartmentTransfersIn,
		Recovered:             in.Recovered,
		Lama:                  in.Lama,
		Absconded:             in.Absconded,
		ReferredOut:           in.ReferredOut,
		NotImproved:           in.NotImproved,
		Deaths:                in.Deaths,
		OTCases:               in.OTCases,
		TotalTransfersIn:      totals.TotalTransfersIn,
		TotalTransfersOut:     totals.TotalTransfersOut,
		CurrentPatients:       totals.CurrentPatients,
		CreatedBy:             userID,
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO census_entries
			(id, department, date, previous_patients,
			 admissions, referrals_in, department_transfers_in,
			 recovered, lama, absconded, referred_out, not_improved, deaths,
			 ot_cases, total_transfers_in, total_transfers_out, current_patients,
			 created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Department, entry.Date, entry.PreviousPatients,
		entry.Admissions, entry.ReferralsIn, entry.DepartmentTransfersIn,
		entry.Recovered, entry.Lama, entry.Absconded, entry.ReferredOut,
		entry.NotImproved, entry.Deaths,
		entry.OTCases, entry.TotalTransfersIn, entry.TotalTransfersOut, entry.CurrentPatients,
		entry.CreatedBy,
	)
	if err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to insert census entry: %w", err)
	}

	if err := auditServices.RecordTx(tx, "census_entries", entry.ID,
		auditModels.ActionCreate, userID, nil, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit census entry: %w", err)
	}

	log.Info().
		Str("department", entry.Department).
		Str("date", entry.Date).
		Int("current_patients", entry.CurrentPatients).
		Msg("census entry created")

	// Read back so timestamps reflect the stored row.
	stored, err := s.GetByID(entry.ID)
	if err != nil || stored == nil {
		return &entry, nil
	}
	return stored, nil
}

// GetByID fetches one entry by primary key, nil when absent.
func (s *CensusService) GetByID(id string) (*models.CensusEntry, error) {
	row := s.DB.QueryRow(`SELECT `+entryColumns+` FROM census_entries WHERE id = ?`, id)
	return scanEntryRow(row)
}

// GetByDate fetches the entry for one (department, date) pair, nil
// when no entry has been submitted yet.
func (s *CensusService) GetByDate(department, date string) (*models.CensusEntry, error) {
	row := s.DB.QueryRow(`SELECT `+entryColumns+` FROM census_entries WHERE department = ? AND date = ?`,
		department, date)
	return scanEntryRow(row)
}

// GetLatest fetches a department's most recent entry, newest date
// first with ties broken by created_at. Nil when the department has no
// entries.
func (s *CensusService) GetLatest(department string) (*models.CensusEntry, error) {
	row := s.DB.QueryRow(`SELECT `+entryColumns+` FROM census_entries
		WHERE department = ?
		ORDER BY date DESC, created_at DESC
		LIMIT 1`, department)
	return scanEntryRow(row)
}

// IsDuplicate reports whether an entry already exists for the pair.
// Informational only; the insert path relies on the unique constraint,
// not on this check.
func (s *CensusService) IsDuplicate(department, date string) (bool, error) {
	var n int
	err := s.DB.QueryRow(`SELECT COUNT(*) FROM census_entries WHERE department = ? AND date = ?`,
		department, date).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check for duplicate entry: %w", err)
	}
	return n > 0, nil
}

// LockEntry finalizes an entry so no further edits are accepted. The
// transition is audited as an UPDATE with before/after lock state.
func (s *CensusService) LockEntry(id, userID string) error {
	entry, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrEntryNotFound
	}
	if entry.IsLocked {
		return ErrEntryLocked
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE census_entries SET is_locked = 1 WHERE id = ? AND is_locked = 0`, id)
	if err != nil {
		return fmt.Errorf("failed to lock census entry: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		// A concurrent lock won the race.
		return ErrEntryLocked
	}

	oldState := map[string]interface{}{"is_locked": false}
	newState := map[string]interface{}{"is_locked": true}
	if err := auditServices.RecordTx(tx, "census_entries", id,
		auditModels.ActionUpdate, userID, oldState, newState); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit lock: %w", err)
	}
	return nil
}

// FetchByDate returns every entry for one calendar date across all
// departments, for dashboard stats.
func (s *CensusService) FetchByDate(date string) ([]models.CensusEntry, error) {
	rows, err := s.DB.Query(`SELECT `+entryColumns+` FROM census_entries WHERE date = ?`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries by date: %w", err)
	}
	return scanEntries(rows)
}

// FetchRange returns entries for the given departments between start
// and end dates inclusive, ordered by date ascending.
func (s *CensusService) FetchRange(startDate, endDate string, depts []string) ([]models.CensusEntry, error) {
	if len(depts) == 0 {
		return nil, nil
	}

	query := `SELECT ` + entryColumns + ` FROM census_entries
		WHERE date >= ? AND date <= ? AND department IN (?` +
		repeatPlaceholder(len(depts)-1) + `)
		ORDER BY date ASC, created_at ASC`

	args := make([]interface{}, 0, len(depts)+2)
	args = append(args, startDate, endDate)
	for _, d := range depts {
		args = append(args, d)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries in range: %w", err)
	}
	return scanEntries(rows)
}

// FetchLatestPerDepartment returns each requested department's newest
// entry. Departments without entries are omitted, not zero-filled.
func (s *CensusService) FetchLatestPerDepartment(depts []string) ([]models.CensusEntry, error) {
	var entries []models.CensusEntry
	for _, dept := range depts {
		entry, err := s.GetLatest(dept)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

func repeatPlaceholder(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += ", ?"
	}
	return out
}

// isDuplicateKeyErr classifies MySQL error 1062 (ER_DUP_ENTRY) as the
// canonical conflict signal for the (department, date) unique key.
func isDuplicateKeyErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(sc rowScanner) (models.CensusEntry, error) {
	var e models.CensusEntry
	var date time.Time
	err := sc.Scan(
		&e.ID, &e.Department, &date, &e.PreviousPatients,
		&e.Admissions, &e.ReferralsIn, &e.DepartmentTransfersIn,
		&e.Recovered, &e.Lama, &e.Absconded, &e.ReferredOut, &e.NotImproved, &e.Deaths,
		&e.OTCases, &e.TotalTransfersIn, &e.TotalTransfersOut, &e.CurrentPatients,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedAt, &e.IsLocked,
	)
	if err != nil {
		return e, err
	}
	e.Date = date.Format("2006-01-02")
	return e, nil
}

func scanEntryRow(row *sql.Row) (*models.CensusEntry, error) {
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan census entry: %w", err)
	}
	return &entry, nil
}

func scanEntries(rows *sql.Rows) ([]models.CensusEntry, error) {
	defer rows.Close()
	var entries []models.CensusEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan census entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
