package matchers

func matchStatusCode(class StatusClass, codes []int, actual any) error {
	f, ok := asFloat(actual)
	if !ok {
		return mismatch(StatusCode, "expected %v to be an HTTP status code", actual)
	}
	status := int(f)

	switch class {
	case StatusExplicit:
		for _, c := range codes {
			if c == status {
				return nil
			}
		}
		return mismatch(StatusCode, "expected status %d to be one of %v", status, codes)
	case StatusInformation:
		return classRange(status, 100, 199, class)
	case StatusSuccess:
		return classRange(status, 200, 299, class)
	case StatusRedirect:
		return classRange(status, 300, 399, class)
	case StatusClientError:
		return classRange(status, 400, 499, class)
	case StatusServerError:
		return classRange(status, 500, 599, class)
	case StatusNonError:
		if status < 400 {
			return nil
		}
		return mismatch(StatusCode, "expected status %d to be less than 400", status)
	case StatusError:
		if status >= 400 {
			return nil
		}
		return mismatch(StatusCode, "expected status %d to be 400 or greater", status)
	default:
		return mismatch(StatusCode, "unknown status class %q", class)
	}
}

func classRange(status, lo, hi int, class StatusClass) error {
	if status >= lo && status <= hi {
		return nil
	}
	return mismatch(StatusCode, "expected status %d to be a %s status (%d-%d)", status, class, lo, hi)
}
