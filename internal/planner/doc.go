// Package planner decides the per-file action (convert or skip) and builds
// a FilePlan that the pipeline executes: target dimensions under the
// longest-edge cap, whether alpha must be normalized, and the target path.
package planner
