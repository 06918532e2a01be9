// file: internals/helpers/batch.go
package helper

/* ===============================
   Hasil operasi bulk (per-item)
=================================*/

const (
	BatchStatusSuccess = "success"
	BatchStatusFailed  = "failed"
	BatchStatusSkipped = "skipped"
)

// BatchItemResult: satu baris hasil untuk satu target di operasi bulk.
// Reason selalu human-readable; UI/CLI menampilkannya apa adanya.
type BatchItemResult struct {
	ID     string `json:"id"`
	Status string `json:"status"` // success | failed | skipped
	Reason string `json:"reason,omitempty"`
}

type BatchSummary struct {
	Total   int               `json:"total"`
	Success int               `json:"success"`
	Failed  int               `json:"failed"`
	Skipped int               `json:"skipped"`
	Items   []BatchItemResult `json:"items"`
}

func NewBatchSummary() *BatchSummary {
	return &BatchSummary{Items: []BatchItemResult{}}
}

func (b *BatchSummary) Add(id, status, reason string) {
	b.Items = append(b.Items, BatchItemResult{ID: id, Status: status, Reason: reason})
	b.Total++
	switch status {
	case BatchStatusSuccess:
		b.Success++
	case BatchStatusFailed:
		b.Failed++
	case BatchStatusSkipped:
		b.Skipped++
	}
}

func (b *BatchSummary) AddSuccess(id, reason string) { b.Add(id, BatchStatusSuccess, reason) }
func (b *BatchSummary) AddFailed(id, reason string)  { b.Add(id, BatchStatusFailed, reason) }
func (b *BatchSummary) AddSkipped(id, reason string) { b.Add(id, BatchStatusSkipped, reason) }
