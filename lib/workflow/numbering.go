package workflow

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const submissionNoLayout = "20060102150405"

var resubmissionSuffix = regexp.MustCompile(`_R(\d+)$`)

// NewSubmissionNo formats LHD_<yyyyMMddHHmmss>_<seq>.
func NewSubmissionNo(createdAt time.Time, seq int) string {
	return fmt.Sprintf("LHD_%s_%03d", createdAt.Format(submissionNoLayout), seq)
}

// ResubmissionNo appends _R1 to a first submission number and increments an existing _Rn.
func ResubmissionNo(submissionNo string) string {
	match := resubmissionSuffix.FindStringSubmatchIndex(submissionNo)
	if match == nil {
		return submissionNo + "_R1"
	}
	n, err := strconv.Atoi(submissionNo[match[2]:match[3]])
	if err != nil {
		return submissionNo + "_R1"
	}
	return fmt.Sprintf("%s_R%d", submissionNo[:match[0]], n+1)
}

// SequenceFromCounter folds a monotonically growing counter into 001..999.
func SequenceFromCounter(counter int64) int {
	if counter <= 0 {
		return 1
	}
	return int((counter-1)%999) + 1
}
