package validators

import "go.mongodb.org/mongo-driver/bson"

var HallValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"venue_id",
			"name",
			"price_per_hour",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"venue_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"capacity_min": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"capacity_max": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"price_per_hour": bson.M{
				"bsonType": []string{"double", "int"},
				"minimum":  0,
			},

			"amenities": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},
		},
	},
}
