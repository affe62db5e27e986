package valid

func Int(in *int) int {
	if in == nil {
		return 0
	}
	return *in
}

func IntPointer(in int) *int {
	return &in
}
