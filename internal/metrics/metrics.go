package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

var (
	initOnce sync.Once

	// FSChecksTotal counts existence checks against the filesystem
	FSChecksTotal *prometheus.CounterVec

	// FSRemovalsTotal counts delete calls by result
	FSRemovalsTotal *prometheus.CounterVec

	// UploadsCompletedTotal counts upload-completion hook runs by result
	UploadsCompletedTotal *prometheus.CounterVec
)

// Init creates all metrics and registers them with the default registerer
// This function is safe to call multiple times (uses sync.Once)
func Init() {
	initOnce.Do(func() {
		FSChecksTotal = NewCounterVec(
			"uploadcleanup_fs_checks_total",
			"Total number of file existence checks.",
			[]string{"result"},
		)
		FSRemovalsTotal = NewCounterVec(
			"uploadcleanup_fs_removals_total",
			"Total number of file delete calls.",
			[]string{"result"},
		)
		UploadsCompletedTotal = NewCounterVec(
			"uploadcleanup_uploads_completed_total",
			"Total number of completed uploads whose source was cleaned up.",
			[]string{"result"},
		)

		prometheus.MustRegister(FSChecksTotal, FSRemovalsTotal, UploadsCompletedTotal)

		// Pre-create label values so every series shows up before the first run
		for _, result := range []string{resultOK, resultError} {
			FSChecksTotal.WithLabelValues(result)
			FSRemovalsTotal.WithLabelValues(result)
			UploadsCompletedTotal.WithLabelValues(result)
		}
	})
}

// RecordUpload counts one upload-completion hook run
func RecordUpload(err error) {
	Init()
	UploadsCompletedTotal.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}
