package section

import (
	"encoding/json"
	"fmt"
	"os"
)

// Job bundles one section, its materials and an ordered list of load cases,
// the unit of work for a compliance check or a batch run.
type Job struct {
	Name      string       `json:"name"`
	Section   Section      `json:"section"`
	Materials Materials    `json:"materials"`
	Cases     []DesignCase `json:"cases"`
}

// Validate checks the job's section, materials and cases.
func (j Job) Validate() error {
	if err := j.Section.Validate(); err != nil {
		return err
	}
	if err := j.Materials.Validate(); err != nil {
		return err
	}
	if len(j.Cases) == 0 {
		return fmt.Errorf("job %q has no load cases", j.Name)
	}
	return nil
}

// LoadJob loads and validates a single job definition from a JSON file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, err
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// LoadBatch loads a JSON array of jobs. Validation is deferred to the batch
// runner so one invalid job does not reject the whole file.
func LoadBatch(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var jobs []Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("batch file %s contains no jobs", path)
	}
	return jobs, nil
}
