package dashboard

// UpdateProgress returns a copy of modules with module id set to progress,
// clamped to [0,100]. A module is completed exactly when it reaches 100.
func UpdateProgress(modules []TrainingModule, id, progress int) []TrainingModule {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	out := make([]TrainingModule, len(modules))
	copy(out, modules)
	for i := range out {
		if out[i].ID == id {
			out[i].Progress = progress
			out[i].Completed = progress == 100
		}
	}
	return out
}

// TrainingProgress returns the number of completed modules and the mean
// progress across all modules, rounded to a whole percent.
func TrainingProgress(modules []TrainingModule) (completed, pct int) {
	sum := 0
	for _, m := range modules {
		if m.Completed {
			completed++
		}
		sum += m.Progress
	}
	return completed, percent(float64(sum), float64(len(modules))*100)
}
