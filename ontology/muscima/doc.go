// Package muscima describes the reference corpus the class ontology
// tracks membership against: MUSCIMA++, an annotated corpus of
// handwritten music notation built on the CVC-MUSCIMA page images.
//
// Each ontology class carries an InReferenceDataset flag recording
// whether annotators use that class in the corpus. This package gives
// that flag its corpus identity (DatasetName, DatasetVersion, Homepage)
// and provides the corpus-side views: Member and Members filter a
// registry down to the annotated subset, and Coverage summarizes how
// much of the ontology the corpus exercises.
//
// # Usage
//
//	stats := muscima.Coverage(ontology.Builtin())
//	fmt.Printf("%s covers %d of %d classes\n",
//	    muscima.DatasetName, stats.Members, stats.Classes)
package muscima
