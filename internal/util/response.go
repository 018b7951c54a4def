package util

type Envelope map[string]any

// ErrorMessage is the error body returned by every entity route.
func ErrorMessage(message string) Envelope {
	return Envelope{"errorMessage": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}
