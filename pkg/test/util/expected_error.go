// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-qasmsim/pkg/util/source"
)

// ERROR_PREFIX identifies a comment line giving an expected error, e.g.
// "//error:3:1-11:duplicate register q".  Columns are numbered from 1, and the
// end column is exclusive.
const ERROR_PREFIX = "//error:"

func extractSyntaxError(lineno int, lines []source.Line, srcfile *source.File) (bool, source.SyntaxError, error) {
	var contents = lines[lineno].String()
	//
	if !strings.HasPrefix(contents, ERROR_PREFIX) {
		return false, source.SyntaxError{}, nil
	}
	//
	line, start, end, msg, err := parseExpectedError(strings.TrimPrefix(contents, ERROR_PREFIX))
	if err != nil {
		return true, source.SyntaxError{}, err
	}
	//
	span, err := determineFileSpan(line, start, end, lines)
	if err != nil {
		return true, source.SyntaxError{}, err
	}
	//
	return true, *srcfile.SyntaxError(span, msg), nil
}

func parseExpectedError(contents string) (line, start, end int, msg string, err error) {
	var splits = strings.SplitN(contents, ":", 3)
	//
	if len(splits) != 3 {
		return 0, 0, 0, "", fmt.Errorf("malformed expected error \"%s\", should be e.g. \"%sX:Y-Z:msg\"",
			contents, ERROR_PREFIX)
	}
	// Parse line number
	if line, err = strconv.Atoi(splits[0]); err != nil {
		return 0, 0, 0, "", fmt.Errorf("invalid line \"%s\" (%s)", splits[0], err.Error())
	} else if line <= 0 {
		return 0, 0, 0, "", fmt.Errorf("invalid line \"%s\" (lines numbered from 1)", splits[0])
	}
	// Parse columns
	if start, end, err = parseColumns(splits[1]); err != nil {
		return 0, 0, 0, "", err
	}
	//
	return line, start, end, splits[2], nil
}

func parseColumns(columns string) (start, end int, err error) {
	var splits = strings.Split(columns, "-")
	//
	if len(splits) != 2 {
		return 0, 0, fmt.Errorf("invalid columns \"%s\" (malformed, should be X-Y)", columns)
	}
	//
	if start, err = strconv.Atoi(splits[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid columns \"%s\" (%s)", columns, err.Error())
	} else if start <= 0 {
		return 0, 0, fmt.Errorf("invalid columns \"%s\" (columns numbered from 1)", columns)
	}
	//
	if end, err = strconv.Atoi(splits[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid columns \"%s\" (%s)", columns, err.Error())
	} else if end < start {
		return 0, 0, fmt.Errorf("invalid columns \"%s\" (end before start)", columns)
	}
	//
	return start, end, nil
}

func determineFileSpan(lineno, start, end int, lines []source.Line) (source.Span, error) {
	if lineno > len(lines) {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", lineno, start, end)
	}
	//
	line := lines[lineno-1]
	// Columns are numbered from 1
	start--
	end--
	//
	if start > line.Length() || end > line.Length() {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (overflows to following line)", lineno, start, end)
	}
	//
	return source.NewSpan(line.Start()+start, line.Start()+end), nil
}
