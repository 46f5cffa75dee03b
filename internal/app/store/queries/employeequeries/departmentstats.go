// internal/app/store/queries/employeequeries/departmentstats.go
package employeequeries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DepartmentStat is one row of the department statistics report.
type DepartmentStat struct {
	Department string  `bson:"_id" json:"department"`
	Count      int64   `bson:"count" json:"count"`
	AvgSalary  float64 `bson:"avg_salary" json:"avgSalary"`
}

// DepartmentStats groups active employees by department and computes
// the headcount and mean salary per group in a single aggregation.
// Groups are sorted by department name so the output is deterministic.
func DepartmentStats(ctx context.Context, db *mongo.Database) ([]DepartmentStat, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"is_active": true}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$department"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg_salary", Value: bson.D{{Key: "$avg", Value: "$salary"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := db.Collection("employees").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	stats := make([]DepartmentStat, 0)
	if err := cur.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
