// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"encoding/json"
	"strconv"
)

// CoerceItems converts raw items into canonical Records.
//
// Each raw item may be:
//   - a string, expanded to Record{Title: s, Value: s}
//   - a Record or *Record
//   - a map[string]any carrying at least a "title" (string or number)
//
// The whole list is rejected with ErrInvalidData if any item fails this
// top-level shape check. Within a valid item, malformed optional fields
// ("keywords", "format", "url", "onclick") are dropped individually rather
// than rejecting the record; a missing or malformed "value" defaults to the
// title.
//
// Coercion rules:
//   - numeric titles and values are rendered as strings
//   - a keywords list containing any non-string, non-number entry collapses
//     to empty
//
// Every returned Record has a non-empty string Title and Value.
func CoerceItems(items []any) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		record, ok := coerceItem(item)
		if !ok {
			return nil, ErrInvalidData
		}
		records = append(records, record)
	}
	return records, nil
}

func coerceItem(item any) (Record, bool) {
	switch v := item.(type) {
	case string:
		if v == "" {
			return Record{}, false
		}
		return Record{Title: v, Value: v}, true
	case Record:
		return coerceRecord(v)
	case *Record:
		if v == nil {
			return Record{}, false
		}
		return coerceRecord(*v)
	case map[string]any:
		return coerceMap(v)
	default:
		return Record{}, false
	}
}

func coerceRecord(record Record) (Record, bool) {
	if record.Title == "" {
		return Record{}, false
	}
	if record.Value == "" {
		record.Value = record.Title
	}
	record.Keywords = coerceKeywordStrings(record.Keywords)
	return record, true
}

func coerceMap(fields map[string]any) (Record, bool) {
	title, ok := stringify(fields["title"])
	if !ok || title == "" {
		return Record{}, false
	}

	record := Record{Title: title, Value: title}

	if value, ok := stringify(fields["value"]); ok && value != "" {
		record.Value = value
	}
	if raw, present := fields["keywords"]; present {
		record.Keywords = coerceKeywords(raw)
	}
	if format, ok := fields["format"].(string); ok {
		record.Format = format
	}
	if url, ok := fields["url"].(string); ok {
		record.URL = url
	}
	if onSelect, ok := fields["onclick"].(func()); ok {
		record.OnSelect = onSelect
	}

	return record, true
}

// coerceKeywords converts a raw keywords field into []string. A single
// invalid entry collapses the whole field to empty.
func coerceKeywords(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return coerceKeywordStrings(v)
	case []any:
		keywords := make([]string, 0, len(v))
		for _, entry := range v {
			keyword, ok := stringify(entry)
			if !ok {
				return nil
			}
			keywords = append(keywords, keyword)
		}
		return keywords
	default:
		return nil
	}
}

func coerceKeywordStrings(keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	return append([]string(nil), keywords...)
}

// stringify renders a string or numeric value as a string. Numbers are
// treated as strings throughout matching.
func stringify(v any) (string, bool) {
	switch n := v.(type) {
	case string:
		return n, true
	case json.Number:
		return n.String(), true
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	default:
		return "", false
	}
}
