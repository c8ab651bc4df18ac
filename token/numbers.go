package token

// number scans a JSON-style number with an optional leading sign at the
// start of d and returns how many bytes matched. A leading zero followed
// by more digits is an error so that strings like "007" stay words.
func number(d []byte) (int, error) {
	i := 0
	if i < len(d) && (d[i] == '-' || d[i] == '+') {
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return i, ErrNumber
	}
	if n > 1 && d[i] == '0' {
		return i + n, ErrNumberLeadingZero
	}
	i += n
	n, err := fract(d[i:])
	if err != nil {
		return i + n, err
	}
	i += n
	n, err = exp(d[i:])
	return i + n, err
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && d[i] >= '0' && d[i] <= '9' {
		i++
	}
	return i
}

func fract(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		return 0, nil
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 1, ErrNumber
	}
	return 1 + n, nil
}

func exp(d []byte) (int, error) {
	if len(d) == 0 || (d[0] != 'e' && d[0] != 'E') {
		return 0, nil
	}
	i := 1
	if i < len(d) && (d[i] == '-' || d[i] == '+') {
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return i, ErrNumber
	}
	return i + n, nil
}
