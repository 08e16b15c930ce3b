package domain

// RequisitionStatus is the lifecycle state of a requisition.
// Input strings are validated against the closed set; anything else is rejected.
type RequisitionStatus string

const (
	RequisitionPending  RequisitionStatus = "pending"
	RequisitionApproved RequisitionStatus = "approved"
	RequisitionRejected RequisitionStatus = "rejected"
)

// ParseRequisitionStatus validates a raw status string.
// An empty string falls back to "pending".
func ParseRequisitionStatus(s string) (RequisitionStatus, error) {
	if s == "" {
		return RequisitionPending, nil
	}
	switch RequisitionStatus(s) {
	case RequisitionPending, RequisitionApproved, RequisitionRejected:
		return RequisitionStatus(s), nil
	}
	return "", ErrInvalidStatus
}

func (s RequisitionStatus) String() string {
	return string(s)
}

// LPOStatus is the delivery state of a local purchase order.
type LPOStatus string

const (
	LPOPending      LPOStatus = "pending"
	LPODelivered    LPOStatus = "delivered"
	LPONotDelivered LPOStatus = "not_delivered"
)

// ParseLPOStatus validates a raw status string.
// An empty string falls back to "pending".
func ParseLPOStatus(s string) (LPOStatus, error) {
	if s == "" {
		return LPOPending, nil
	}
	switch LPOStatus(s) {
	case LPOPending, LPODelivered, LPONotDelivered:
		return LPOStatus(s), nil
	}
	return "", ErrInvalidStatus
}

func (s LPOStatus) String() string {
	return string(s)
}
