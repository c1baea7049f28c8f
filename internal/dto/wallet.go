package dto

// DenominationRecord is the wire form of a denomination. SlotIndex is a
// pointer: records written before slot identities were persisted carry
// none, and readers fall back to amount ordering.
type DenominationRecord struct {
	ID        string  `json:"id"`
	SlotIndex *int    `json:"slotIndex,omitempty"`
	Amount    float64 `json:"amount"`
}

type UpdateDenominationRequest struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
}

type BatchUpdateDenominationsRequest struct {
	Updates []UpdateDenominationRequest `json:"updates"`
}

type UpiResponse struct {
	UpiID string `json:"upiId"`
}

type SetUpiRequest struct {
	UpiID string `json:"upiId"`
}
