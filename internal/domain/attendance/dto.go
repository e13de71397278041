package attendance

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmpID string `json:"empId"`
}

func (r *CheckInRequest) Validate() error {
	return validateEmpID(r.EmpID)
}

type CheckOutRequest struct {
	EmpID string `json:"empId"`
}

func (r *CheckOutRequest) Validate() error {
	return validateEmpID(r.EmpID)
}

func validateEmpID(empID string) error {
	if validator.IsEmpty(empID) {
		return validator.ValidationErrors{{
			Field:   "empId",
			Message: "empId is required",
		}}
	}
	return nil
}

type CheckInResponse struct {
	Message string `json:"message"`
	CheckIn string `json:"checkIn"`
}

type CheckOutResponse struct {
	Message  string `json:"message"`
	CheckOut string `json:"checkOut"`
}

// DayAttendanceResponse carries the stored clocks plus, when both are set,
// the derived status fields. A nil Status omits those keys entirely.
type DayAttendanceResponse struct {
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	*Status
}

// Event names published on the attendance event stream.
const (
	EventCheckIn  = "checkin"
	EventCheckOut = "checkout"
)

type AttendanceEvent struct {
	EmpID string `json:"empId"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}
