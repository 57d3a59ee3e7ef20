package report

import "github.com/goodnatureofminers/poolscope-backend/internal/pool/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RowClassifier interface {
		ClassifyRaw(vinRaw, voutRaw string) model.Classification
	}
)
