/*******************************************************************************
 * Copyright (c) 2025 St. Jude Children's Research Hospital.
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

// package dataset resolves which dataset a sample file should be annotated
// with when it belongs to more than one, and composes matrix column names.

package dataset

import "strings"

// Unspecified is the dataset ID used when a file belongs to no dataset.
const Unspecified = "UnspecifiedDataset"

// Dataset pairs a dataset's full label with the short ID used in sample
// names.
type Dataset struct {
	Label string
	ID    string
}

// Priority is an ordered list of datasets; earlier entries outrank later
// ones when a file belongs to more than one. The list is injected wherever a
// dataset needs resolving so it can be replaced for testing or as new
// datasets are released.
type Priority []Dataset

// DefaultPriority returns the St. Jude Cloud datasets in release order,
// which is the order used to pick the annotated dataset.
func DefaultPriority() Priority {
	return Priority{
		{"Pediatric Cancer Genome Project (PCGP)", "PCGP"},
		{"Clinical Pilot", "ClinicalPilot"},
		{"Genomes 4 Kids (G4K)", "G4K"},
		{"Real-time Clinical Genomics (RTCG)", "RTCG"},
		{"Childhood Solid Tumor Network (CSTN)", "CSTN"},
		{"Pan-Acute Lymphoblastic Leukemia (PanALL)", "PanALL"},
		{"Pediatric Therapy-related Myeloid Neoplasms (tMN)", "tMN"},
	}
}

// Resolve picks the highest priority dataset among the given labels and
// returns its short ID. Labels may be given as full labels or short IDs.
// Labels not in the priority list rank below every listed one and are
// otherwise picked in lexical order, so the choice stays deterministic. An
// empty set resolves to Unspecified.
func (p Priority) Resolve(labels []string) string {
	best := ""
	bestRank := len(p) + 1

	for _, label := range labels {
		rank, id := p.rank(label)

		if rank < bestRank || (rank == bestRank && id < best) {
			bestRank, best = rank, id
		}
	}

	if best == "" {
		return Unspecified
	}

	return best
}

// rank returns the label's position in the priority list and its short ID.
// Unlisted labels all rank just past the end of the list and keep their own
// name as the ID.
func (p Priority) rank(label string) (int, string) {
	for i, d := range p {
		if d.Label == label || d.ID == label {
			return i, d.ID
		}
	}

	return len(p), label
}

// SampleName composes the matrix column name for a sample belonging to the
// given dataset labels, eg. "SJABCD1234 (PCGP)".
func (p Priority) SampleName(sample string, labels []string) string {
	return sample + " (" + p.Resolve(labels) + ")"
}

// ParseLabels splits a comma separated dataset property value in to
// individual labels, dropping blanks.
func ParseLabels(value string) []string {
	var labels []string

	for _, label := range strings.Split(value, ",") {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}

	return labels
}
