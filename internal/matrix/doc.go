// Package matrix extracts the local build matrix from a feedstock's
// rendered CI configuration.
//
// The rendered CircleCI configuration is the single source of truth for
// which jobs exist; the optional conda-forge.yml settings file only
// contributes the docker executable and image shared by all jobs. Job order
// follows the configuration document so repeated runs produce the same
// listing and summary order.
//
// Example usage:
//
//	jobs, err := matrix.Collect("~/ffmpeg-feedstock")
//	if err != nil {
//	    return err
//	}
//	for _, job := range jobs {
//	    fmt.Println(job.Name)
//	}
package matrix
