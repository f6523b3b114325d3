package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestRunCronJob(t *testing.T) {
	job := &fakeCronJob{}
	services := CronJobServices{CronJobTypeExpiration: job}

	t.Run("dispara a rotina", func(t *testing.T) {
		rec := serve(t, CronJobs(services), adminClaims, http.MethodPost, "/v1/cron/expiration/run", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, job.triggered)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		rec := serve(t, CronJobs(services), adminClaims, http.MethodPost, "/v1/cron/meta/run", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("somente administradores", func(t *testing.T) {
		rec := serve(t, CronJobs(services), ownerClaims, http.MethodPost, "/v1/cron/expiration/run", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{CronJobTypeExpiration: &fakeCronJob{}}

	rec := serve(t, CronJobs(services), adminClaims, http.MethodGet, "/v1/cron/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"expiration":{"sync_enabled":true}}`, rec.Body.String())
}
