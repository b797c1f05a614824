package db

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/config"
	directorystore "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/directory/store"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	fillDirectory(config.Conf.Database.DirectorySeedFile)
}

// fillDirectory upserts the users listed in a name;email;role;department
// file. The first line is a header.
func fillDirectory(filePath string) {
	if filePath == "" {
		return
	}
	logger := log.WithField("file", filePath)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		logger.Info("directory seed file not found, skipped")
		return
	}
	records, err := parseDirectoryFile(filePath)
	if err != nil {
		logger.WithError(err).Error("error reading directory seed file")
		return
	}
	store := directorystore.NewInstance(DB)
	for _, rec := range records {
		if err = store.Upsert(&rec); err != nil {
			logger.
				WithError(err).
				WithField("email", rec.Email).
				Error("error seeding directory user")
			return
		}
	}
	logger.WithField("users", len(records)).Info("directory seeded")
}

func parseDirectoryFile(filePath string) ([]dbmodels.DirectoryUser, error) {
	lines, err := readCsvFile(filePath, ';')
	if err != nil {
		return nil, err
	}
	result := []dbmodels.DirectoryUser{}
	for k, line := range lines {
		if k == 0 {
			continue
		}
		if len(line) < 3 {
			return nil, errors.Errorf("line %v: expected name;email;role;department", k+1)
		}
		role, err := models.ParseWorkflowRole(line[2])
		if err != nil {
			return nil, errors.Wrapf(err, "line %v", k+1)
		}
		rec := dbmodels.DirectoryUser{
			Name:     strings.TrimSpace(line[0]),
			Email:    strings.ToLower(strings.TrimSpace(line[1])),
			Role:     role,
			IsActive: true,
		}
		if len(line) > 3 {
			rec.Department = strings.TrimSpace(line[3])
		}
		result = append(result, rec)
	}
	return result, nil
}

func readCsvFile(filePath string, comma rune) ([][]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read input file")
	}
	defer f.Close()

	csvReader := csv.NewReader(f)
	csvReader.Comma = comma
	csvReader.FieldsPerRecord = -1
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse file as CSV")
	}
	return records, nil
}
