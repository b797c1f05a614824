package submissionstore

import (
	"strings"

	legalapimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api/legal"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrVersionConflict is returned by Save when another writer got there first.
var ErrVersionConflict = errors.New("submission was changed by another request")

type Provider interface {
	Create(rec *dbmodels.Submission) error
	GetByID(id string) (*dbmodels.Submission, error)
	// GetForUpdate locks the submission row until the surrounding transaction ends.
	GetForUpdate(id string) (*dbmodels.Submission, error)
	// Save writes rec if the stored version is still expectedVersion and
	// upserts its child rows.
	Save(rec dbmodels.Submission, expectedVersion int) error
	List(filter legalapimodels.SubmissionFilter) ([]dbmodels.Submission, error)
	ListCount(filter legalapimodels.SubmissionFilter) (int64, error)
	NextSequence() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

const SequenceName = "submission_no_seq"

func (i impl) Create(rec *dbmodels.Submission) error {
	err := i.db.
		Omit(clause.Associations).
		Create(rec).
		Error
	if err != nil {
		return err
	}
	return i.saveChildren(*rec)
}

func (i impl) GetByID(id string) (*dbmodels.Submission, error) {
	return i.get(i.db, id)
}

func (i impl) GetForUpdate(id string) (*dbmodels.Submission, error) {
	return i.get(i.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (i impl) get(tx *gorm.DB, id string) (*dbmodels.Submission, error) {
	rec := dbmodels.Submission{}
	err := tx.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err = i.loadChildren(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) loadChildren(rec *dbmodels.Submission) error {
	byPosition := func(out interface{}) error {
		return i.db.
			Where("submission_id = ?", rec.ID).
			Order("position ASC").
			Find(out).
			Error
	}
	rec.Parties = []dbmodels.Party{}
	if err := byPosition(&rec.Parties); err != nil {
		return errors.Wrap(err, "error loading parties")
	}
	rec.Approvals = []dbmodels.Approval{}
	if err := byPosition(&rec.Approvals); err != nil {
		return errors.Wrap(err, "error loading approvals")
	}
	rec.Documents = []dbmodels.Document{}
	if err := byPosition(&rec.Documents); err != nil {
		return errors.Wrap(err, "error loading documents")
	}
	rec.Comments = []dbmodels.Comment{}
	if err := byPosition(&rec.Comments); err != nil {
		return errors.Wrap(err, "error loading comments")
	}
	rec.SpecialApprovers = []dbmodels.SpecialApprover{}
	if err := byPosition(&rec.SpecialApprovers); err != nil {
		return errors.Wrap(err, "error loading special approvers")
	}
	return nil
}

func (i impl) Save(rec dbmodels.Submission, expectedVersion int) error {
	result := i.db.
		Model(&rec).
		Where("version = ?", expectedVersion).
		Select("*").
		Omit(clause.Associations, "CreatedAt").
		Updates(&rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return i.saveChildren(rec)
}

// saveChildren upserts every child row. Rows are never deleted: ledgers and
// comments only grow.
func (i impl) saveChildren(rec dbmodels.Submission) error {
	if len(rec.Parties) != 0 {
		if err := i.db.Save(&rec.Parties).Error; err != nil {
			return errors.Wrap(err, "error saving parties")
		}
	}
	if len(rec.Approvals) != 0 {
		if err := i.db.Save(&rec.Approvals).Error; err != nil {
			return errors.Wrap(err, "error saving approvals")
		}
	}
	if len(rec.Documents) != 0 {
		if err := i.db.Save(&rec.Documents).Error; err != nil {
			return errors.Wrap(err, "error saving documents")
		}
	}
	if len(rec.Comments) != 0 {
		if err := i.db.Save(&rec.Comments).Error; err != nil {
			return errors.Wrap(err, "error saving comments")
		}
	}
	if len(rec.SpecialApprovers) != 0 {
		if err := i.db.Save(&rec.SpecialApprovers).Error; err != nil {
			return errors.Wrap(err, "error saving special approvers")
		}
	}
	return nil
}

func (i impl) List(filter legalapimodels.SubmissionFilter) (list []dbmodels.Submission, err error) {
	list = []dbmodels.Submission{}
	tx := i.db.Model(&dbmodels.Submission{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err = tx.Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter legalapimodels.SubmissionFilter) (int64, error) {
	var rowCount int64
	tx := i.db.Model(&dbmodels.Submission{})
	i.addFilter(tx, filter)
	err := tx.Count(&rowCount).Error
	if err != nil {
		return 0, errors.Wrap(err, "error counting submissions")
	}
	return rowCount, nil
}

func (i impl) addFilter(tx *gorm.DB, filter legalapimodels.SubmissionFilter) {
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.FormID != 0 {
		tx.Where("form_id = ?", filter.FormID)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("(LOWER(submission_no) like ? OR LOWER(title) like ?)", search, search)
	}
	email := strings.ToLower(filter.UserEmail)
	if filter.Mine && email != "" {
		tx.Where("LOWER(initiator_email) = ?", email)
	}
	if filter.Assigned && email != "" {
		approvals := i.db.Model(&dbmodels.Approval{}).Select("submission_id").Where("LOWER(approver_email) = ?", email)
		specials := i.db.Model(&dbmodels.SpecialApprover{}).Select("submission_id").Where("LOWER(approver_email) = ?", email)
		tx.Where("(id in (?) OR id in (?) OR LOWER(assigned_officer_email) = ? OR LOWER(court_officer_email) = ?)",
			approvals, specials, email, email)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}

func (i impl) NextSequence() (int64, error) {
	var value int64
	err := i.db.Raw("SELECT nextval('" + SequenceName + "')").Scan(&value).Error
	if err != nil {
		return 0, errors.Wrap(err, "error reading submission sequence")
	}
	return value, nil
}
