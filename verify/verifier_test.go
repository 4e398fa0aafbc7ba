//
// Copyright 2021 Johns Hopkins University
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
//

package verify

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"io/ioutil"
	"path/filepath"
	"rdfgen/model"
	"strings"
	"testing"
)

func fixture(count int) string {
	sb := strings.Builder{}
	for i := 0; i < count; i++ {
		sb.WriteString(model.Triple{Id: uint64(i)}.Render())
	}
	return sb.String()
}

func Test_StreamOk(t *testing.T) {
	report, err := Stream(strings.NewReader(fixture(20)), 20)
	assert.Nil(t, err)
	assert.Equal(t, 20, report.Triples)
}

func Test_StreamEmpty(t *testing.T) {
	report, err := Stream(strings.NewReader(""), 0)
	assert.Nil(t, err)
	assert.Equal(t, 0, report.Triples)
}

func Test_StreamTooFew(t *testing.T) {
	report, err := Stream(strings.NewReader(fixture(3)), 4)
	assert.NotNil(t, err)
	assert.Equal(t, 3, report.Triples)
	assert.Contains(t, err.Error(), "expected 4 triples, found 3")
}

func Test_StreamTooMany(t *testing.T) {
	_, err := Stream(strings.NewReader(fixture(3)), 2)

	var verifyErr VerifyErr
	assert.True(t, errors.As(err, &verifyErr))
	assert.Equal(t, 3, verifyErr.Line)
}

func Test_StreamOutOfOrder(t *testing.T) {
	content := model.Triple{Id: 0}.Render() + model.Triple{Id: 2}.Render() + model.Triple{Id: 1}.Render()

	report, err := Stream(strings.NewReader(content), 3)

	var verifyErr VerifyErr
	assert.True(t, errors.As(err, &verifyErr))
	assert.Equal(t, 2, verifyErr.Line)
	assert.Equal(t, 1, report.Triples)
}

func Test_StreamMalformed(t *testing.T) {
	content := model.Triple{Id: 0}.Render() + "this is not a triple\n"

	_, err := Stream(strings.NewReader(content), 2)

	var verifyErr VerifyErr
	assert.True(t, errors.As(err, &verifyErr))
	assert.Equal(t, 2, verifyErr.Line)
	assert.NotNil(t, errors.Unwrap(err))
}

func Test_VerifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.ttl")
	assert.Nil(t, ioutil.WriteFile(path, []byte(fixture(10)), 0644))

	report, err := Verify(path, 10)
	assert.Nil(t, err)
	assert.Equal(t, path, report.Path)
	assert.Equal(t, 10, report.Triples)
}

func Test_VerifyMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ttl")

	_, err := Verify(path, 10)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), path)
}

func Test_CountQuads(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "fixture.ttl")
	assert.Nil(t, ioutil.WriteFile(path, []byte(fixture(15)), 0644))
	count, err := CountQuads(path)
	assert.Nil(t, err)
	assert.Equal(t, 15, count)

	empty := filepath.Join(dir, "empty.ttl")
	assert.Nil(t, ioutil.WriteFile(empty, []byte{}, 0644))
	count, err = CountQuads(empty)
	assert.Nil(t, err)
	assert.Equal(t, 0, count)
}
