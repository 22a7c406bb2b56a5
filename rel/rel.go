/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package rel models the relational nodes whose scalar expressions get compiled.
// The set is open: hosts may pass other kinds, which the compiler rejects by name.
package rel

import (
	"strconv"

	"github.com/rulego/streamexpr/rex"
)

const (
	KindFilter  = "filter"
	KindProject = "project"
)

// Node is a planned relational operator.
type Node interface {
	// RelType names the kind of node, for example "filter".
	RelType() string
}

// Filter keeps the rows for which Condition is TRUE.
type Filter struct {
	Condition rex.Node
}

// Project computes one output column per entry of Projects, in order.
type Project struct {
	Projects []rex.Node
	// FieldNames optionally names the output columns.
	FieldNames []string
}

func NewFilter(condition rex.Node) *Filter {
	return &Filter{Condition: condition}
}

func NewProject(projects ...rex.Node) *Project {
	return &Project{Projects: projects}
}

func (*Filter) RelType() string  { return KindFilter }
func (*Project) RelType() string { return KindProject }

// FieldName returns the name of output column i, or "EXPR$i" when unnamed.
func (p *Project) FieldName(i int) string {
	if i < len(p.FieldNames) && p.FieldNames[i] != "" {
		return p.FieldNames[i]
	}
	return "EXPR$" + strconv.Itoa(i)
}
