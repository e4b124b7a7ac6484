package domain

import "time"

// BucketTable é uma tabela cujas linhas carregam buckets de data local
type BucketTable string

const (
	TableDials        BucketTable = "dials"
	TableAppointments BucketTable = "appointments"
	TableDiscoveries  BucketTable = "discoveries"
	TableContacts     BucketTable = "contacts"
)

var BucketTables = []BucketTable{TableDials, TableAppointments, TableDiscoveries, TableContacts}

// TimestampColumn é a coluna UTC da qual os buckets são derivados
func (t BucketTable) TimestampColumn() string {
	if t == TableContacts {
		return "crm_created_at"
	}
	return "occurred_at"
}

// LocalBuckets são datas civis (meia-noite, time.UTC) no fuso da conta
type LocalBuckets struct {
	LocalDate       time.Time `json:"local_date"`
	LocalWeekStart  time.Time `json:"local_week_start"`
	LocalMonthStart time.Time `json:"local_month_start"`
}

type TimestampRow struct {
	ID        int64
	Timestamp time.Time
}

type BucketUpdate struct {
	ID      int64
	Buckets LocalBuckets
}

type BatchFailure struct {
	BatchKey string `json:"batch_key"`
	Error    string `json:"error"`
}

type BatchReport struct {
	JobID         string         `json:"job_id"`
	AccountID     string         `json:"account_id"`
	Timezone      string         `json:"timezone"`
	Processed     int            `json:"processed"`
	Succeeded     int            `json:"succeeded"`
	Failed        int            `json:"failed"`
	FailedBatches int            `json:"failed_batches"`
	Superseded    bool           `json:"superseded"`
	Reasons       []BatchFailure `json:"reasons"`
	StartedAt     time.Time      `json:"started_at"`
	FinishedAt    time.Time      `json:"finished_at"`
}
