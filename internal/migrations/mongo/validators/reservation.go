package validators

import "go.mongodb.org/mongo-driver/bson"

var ReservationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"venue_id",
			"hall_id",
			"event_date",
			"start_time",
			"end_time",
			"guest_count",
			"total_amount",
			"status",
			"customer",
			"created_at",
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

			"hall_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"event_date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"start_time": bson.M{
				"bsonType": "string",
				"pattern":  `^([01][0-9]|2[0-3]):[0-5][0-9]$`,
			},

			"end_time": bson.M{
				"bsonType": "string",
				"pattern":  `^([01][0-9]|2[0-3]):[0-5][0-9]$`,
			},

			"guest_count": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"total_amount": bson.M{
				"bsonType": []string{"double", "int"},
				"minimum":  0,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"confirmed",
				},
			},

			"customer": bson.M{
				"bsonType": "object",
				"required": []string{"name", "phone", "email"},
				"properties": bson.M{
					"name": bson.M{
						"bsonType":  "string",
						"minLength": 2,
					},
					"phone": bson.M{
						"bsonType":  "string",
						"minLength": 7,
					},
					"email": bson.M{
						"bsonType":  "string",
						"minLength": 3,
					},
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
