package fleet

import "github.com/ianphil/pyRoute13/simtime"

// JobId identifies a Job within the Environment's registry.
type JobId int

// JobKind discriminates the two Job variants.
type JobKind int

const (
	KindTransfer JobKind = iota
	KindOutOfService
)

// TransferState is a TransferJob's lifecycle state.
type TransferState int

const (
	BeforePickup TransferState = iota
	Enroute
)

// OutOfServiceState is an OutOfServiceJob's lifecycle state.
type OutOfServiceState int

const (
	BeforeBreak OutOfServiceState = iota
	OnBreak
)

// Job is the common interface over TransferJob and OutOfServiceJob: one
// variant with a common header. assigned_to is stored as a CartId
// back-reference, never an owning pointer, so snapshots can be
// deep-copied without cyclic aliasing.
type Job interface {
	ID() JobId
	Kind() JobKind
	AssignedTo() (CartId, bool)
	SetAssignedTo(CartId)
	Clone() Job
}

// TransferJob moves Quantity items from PickupLocation (no earlier than
// PickupAfter) to DropoffLocation (no later than DropoffBefore).
// Invariant: PickupAfter <= DropoffBefore.
type TransferJob struct {
	Id              JobId
	Quantity        int
	PickupLocation  LocationId
	PickupAfter     simtime.SimTime
	DropoffLocation LocationId
	DropoffBefore   simtime.SimTime
	State           TransferState

	assignedTo   CartId
	hasAssignee  bool
}

func (j *TransferJob) ID() JobId     { return j.Id }
func (j *TransferJob) Kind() JobKind { return KindTransfer }

func (j *TransferJob) AssignedTo() (CartId, bool) { return j.assignedTo, j.hasAssignee }

func (j *TransferJob) SetAssignedTo(c CartId) {
	j.assignedTo = c
	j.hasAssignee = true
}

func (j *TransferJob) Clone() Job {
	clone := *j
	return &clone
}

// OutOfServiceJob suspends a cart at SuspendLocation between SuspendTime
// and ResumeTime. Invariant: SuspendTime <= ResumeTime.
type OutOfServiceJob struct {
	Id             JobId
	SuspendLocation LocationId
	SuspendTime     simtime.SimTime
	ResumeTime      simtime.SimTime
	State           OutOfServiceState

	assignedTo  CartId
	hasAssignee bool
}

func (j *OutOfServiceJob) ID() JobId     { return j.Id }
func (j *OutOfServiceJob) Kind() JobKind { return KindOutOfService }

func (j *OutOfServiceJob) AssignedTo() (CartId, bool) { return j.assignedTo, j.hasAssignee }

func (j *OutOfServiceJob) SetAssignedTo(c CartId) {
	j.assignedTo = c
	j.hasAssignee = true
}

func (j *OutOfServiceJob) Clone() Job {
	clone := *j
	return &clone
}
