package utils

import "github.com/goccy/go-json"

func ParseJSONBody(body []byte) (map[string]interface{}, error) {
	data := make(map[string]interface{})
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	return data, nil
}
