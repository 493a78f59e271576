package entry

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=entry_repo.go -destination=mock/entry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, entry *Entry) error
	ExistsByLinkAndUPI(ctx context.Context, linkID, upiID string) (bool, error)
	FindByLink(ctx context.Context, linkID string) ([]Entry, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Entry, error)

	// Aggregation surface dipakai report façade
	DistinctLinkIDsByEmployee(ctx context.Context, employeeID string) ([]string, error)
	FindPageByEmployeeAndLink(ctx context.Context, employeeID, linkID string, offset, limit int) ([]Entry, error)
	CountByEmployeeAndLink(ctx context.Context, employeeID, linkID string) (int64, error)
	SumAmountByEmployeeAndLink(ctx context.Context, employeeID, linkID string) (float64, error)
	SummarizeByEmployeeForLink(ctx context.Context, linkID string) ([]EmployeeSummaryRow, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

const insertEntryQuery = `
INSERT INTO entries (id, link_id, employee_id, name, upi_id, amount, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// Create menulis lewat *sql.Tx saat repo dipegang transaksi, supaya
// row entry dan row outbox berbagi satu commit.
func (r *repository) Create(ctx context.Context, entry *Entry) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(entry).Error
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := r.tx.ExecContext(ctx, insertEntryQuery,
		entry.ID, entry.LinkID, entry.EmployeeID,
		entry.Name, entry.UpiID, entry.Amount, entry.CreatedAt,
	)
	return err
}

func (r *repository) ExistsByLinkAndUPI(ctx context.Context, linkID, upiID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Entry{}).
		Where("link_id = ?", linkID).
		Where("upi_id = ?", upiID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByLink(ctx context.Context, linkID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Find(&entries, "link_id = ?", linkID).Error
	return entries, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Find(&entries, "employee_id = ?", employeeID).Error
	return entries, err
}

// DistinctLinkIDsByEmployee mengembalikan distinct link id milik satu employee,
// diurutkan leksikografis pada representasi teksnya SEBELUM pagination slice
// supaya page boundary stabil antar pemanggilan.
func (r *repository) DistinctLinkIDsByEmployee(ctx context.Context, employeeID string) ([]string, error) {
	var ids []string
	query := `
SELECT DISTINCT link_id::text AS link_id
FROM entries
WHERE employee_id = ?
ORDER BY link_id ASC
`
	err := r.db.WithContext(ctx).Raw(query, employeeID).Scan(&ids).Error
	return ids, err
}

func (r *repository) FindPageByEmployeeAndLink(
	ctx context.Context,
	employeeID, linkID string,
	offset, limit int,
) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("link_id = ?", linkID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *repository) CountByEmployeeAndLink(ctx context.Context, employeeID, linkID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Entry{}).
		Where("employee_id = ?", employeeID).
		Where("link_id = ?", linkID).
		Count(&count).Error
	return count, err
}

// SumAmountByEmployeeAndLink menjumlahkan amount untuk SEMUA row yang match,
// bukan hanya page yang dikembalikan. Empty set menghasilkan 0.
func (r *repository) SumAmountByEmployeeAndLink(ctx context.Context, employeeID, linkID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&Entry{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("employee_id = ?", employeeID).
		Where("link_id = ?", linkID).
		Scan(&total).Error
	return total, err
}

// SummarizeByEmployeeForLink meng-group entries sebuah link per employee,
// di-join ke employees lewat stable employee id. Inner join: baris yang
// employee record-nya sudah hilang ikut terbuang.
func (r *repository) SummarizeByEmployeeForLink(ctx context.Context, linkID string) ([]EmployeeSummaryRow, error) {
	var rows []EmployeeSummaryRow
	query := `
SELECT
	entries.employee_id::text AS employee_id,
	employees.name AS name,
	COUNT(*) AS entry_count,
	SUM(entries.amount) AS employee_total
FROM entries
JOIN employees ON employees.employee_id = entries.employee_id
WHERE entries.link_id = ?
GROUP BY entries.employee_id, employees.name
ORDER BY employees.name ASC
`
	err := r.db.WithContext(ctx).Raw(query, linkID).Scan(&rows).Error
	return rows, err
}
