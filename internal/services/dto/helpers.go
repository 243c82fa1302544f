package dto

// Small setters shared by the ToUpdates methods. A nil pointer means the
// field was absent from the request body.

func setString(updates map[string]interface{}, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}

func setInt(updates map[string]interface{}, column string, v *int) {
	if v != nil {
		updates[column] = *v
	}
}

func setUint(updates map[string]interface{}, column string, v *uint) {
	if v != nil {
		updates[column] = *v
	}
}

func setBool(updates map[string]interface{}, column string, v *bool) {
	if v != nil {
		updates[column] = *v
	}
}

func setFloat(updates map[string]interface{}, column string, v *float64) {
	if v != nil {
		updates[column] = *v
	}
}
