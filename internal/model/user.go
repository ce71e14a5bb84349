package model

// maskPhone returns the display form of a phone number, revealing only the
// last four digits. Numbers too short to mask collapse to "***".
func maskPhone(phone string) string {
	if len(phone) < 4 {
		return "***"
	}
	return "***-***-" + phone[len(phone)-4:]
}
