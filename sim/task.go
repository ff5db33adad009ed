package sim

import "fmt"

// ResourceKind identifies one of the five interchangeable staff/equipment
// groups a treatment task can require. The set is closed: the task catalog
// below is the only producer of kinds, so an out-of-range kind reaching a
// selection switch is a programming error, not a runtime contingency.
type ResourceKind int

const (
	Doctor ResourceKind = iota
	Nurse
	Wardie
	Lab
	XRayStaff

	numResourceKinds
)

// AllResourceKinds lists the kinds in reporting order.
var AllResourceKinds = [numResourceKinds]ResourceKind{Doctor, Nurse, Wardie, Lab, XRayStaff}

func (k ResourceKind) String() string {
	switch k {
	case Doctor:
		return "DOCTOR"
	case Nurse:
		return "NURSE"
	case Wardie:
		return "WARDIE"
	case Lab:
		return "LAB"
	case XRayStaff:
		return "X_RAY_STAFF"
	}
	return fmt.Sprintf("ResourceKind(%d)", int(k))
}

// Task is an immutable catalog entry: a named treatment step bound to the
// resource kind that performs it and a fixed duration in simulation minutes.
type Task struct {
	Name     string
	Kind     ResourceKind
	Duration int
}

// The fixed task catalog. Durations are in minutes.
var (
	TaskBedAlloc              = Task{"BED_ALLOC", Nurse, 10}
	TaskMedicalAssessment     = Task{"MEDICAL_ASS", Doctor, 20}
	TaskVitalSigns            = Task{"VITAL_SIGNS", Nurse, 15}
	TaskTakeBloods            = Task{"TAKE_BLOODS", Nurse, 10}
	TaskPathologyTest         = Task{"PATHOLOGY_TEST", Lab, 60}
	TaskReviewDischarge       = Task{"REVIEW_DISCHARGE", Doctor, 10}
	TaskXRay                  = Task{"X_RAY", XRayStaff, 30}
	TaskPlastering            = Task{"PLASTERING", Doctor, 30}
	TaskAnaesthetic           = Task{"ANAESTHETIC", Nurse, 30}
	TaskAnaestheticRecovery   = Task{"ANAESTHETIC_REC", Nurse, 30}
	TaskSutures               = Task{"SUTURES", Doctor, 30}
	TaskDischarge             = Task{"DISCHARGE", Nurse, 20}
	TaskNurseTreatment        = Task{"NURSE_TREATMENT", Nurse, 20}
	TaskPatientNotes          = Task{"PATIENT_NOTES", Doctor, 20}
	TaskAdmitInpatientUnit    = Task{"ADMIT_IMPATIENT_UNIT", Doctor, 10}
	TaskTransferInpatientUnit = Task{"TRANSFER_IMPATIENT_UNIT", Wardie, 30}
)

// TreatmentPaths holds the eight canonical task sequences a patient can be
// routed through. Each path ends in a distinct terminal step: a discharge
// variant or a transfer to the in-patient unit.
var TreatmentPaths = [8][]Task{
	// Consultation and discharge
	{TaskBedAlloc, TaskMedicalAssessment, TaskVitalSigns, TaskReviewDischarge, TaskDischarge},
	// Bloods and pathology workup
	{TaskBedAlloc, TaskVitalSigns, TaskTakeBloods, TaskPathologyTest, TaskReviewDischarge, TaskDischarge},
	// Fracture: x-ray then plastering
	{TaskBedAlloc, TaskMedicalAssessment, TaskXRay, TaskPlastering, TaskPatientNotes, TaskDischarge},
	// Laceration: sutures under local anaesthetic
	{TaskBedAlloc, TaskMedicalAssessment, TaskAnaesthetic, TaskSutures, TaskAnaestheticRecovery, TaskDischarge},
	// Nurse-led treatment
	{TaskBedAlloc, TaskVitalSigns, TaskNurseTreatment, TaskReviewDischarge, TaskDischarge},
	// Pathology-confirmed admission to the in-patient unit
	{TaskBedAlloc, TaskMedicalAssessment, TaskTakeBloods, TaskPathologyTest, TaskAdmitInpatientUnit, TaskTransferInpatientUnit},
	// Imaging-confirmed admission to the in-patient unit
	{TaskBedAlloc, TaskMedicalAssessment, TaskXRay, TaskPatientNotes, TaskAdmitInpatientUnit, TaskTransferInpatientUnit},
	// Observation and notes
	{TaskBedAlloc, TaskVitalSigns, TaskMedicalAssessment, TaskNurseTreatment, TaskPatientNotes, TaskDischarge},
}
