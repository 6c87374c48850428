package rut

// CheckDigit computes the check digit for a RUT body using the modulo-11
// algorithm: each decimal digit, taken right to left, is multiplied by a
// weight drawn cyclically from 2..7; the products are summed; the digit
// is 11 minus the sum mod 11, with 11 mapping to "0" and 10 to "K".
//
// The function is total: every body yields a single character in
// [0-9K], and the same body always yields the same character.
func CheckDigit(body uint64) string {
	return string(checkByte(body))
}

func checkByte(body uint64) byte {
	sum := 0
	weight := 2
	for {
		sum += int(body%10) * weight
		weight++
		if weight > 7 {
			weight = 2
		}
		body /= 10
		if body == 0 {
			break
		}
	}

	switch r := 11 - sum%11; r {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + r)
	}
}
