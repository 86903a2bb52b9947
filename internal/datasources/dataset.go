package datasources

// DatasetRepository is everything the primary store provides: the engine's
// input and output contracts, the read model, and ingestion.
type DatasetRepository interface {
	ItemLister
	ActiveRankingLister
	VisitLister
	ResultCommitter
	ReadModel
	UserRankingReplacer
	VisitRecorder
}
