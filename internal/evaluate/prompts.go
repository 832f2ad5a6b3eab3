package evaluate

// summaryPrompt guides the model through grading a learner-written
// summary of a lesson text. It asks for strict JSON so the response can
// be decoded directly.
const summaryPrompt = `You are a French language teacher evaluating a student's written summary of a text they just read.

Original text:
%s

Student's summary:
%s

Evaluate the summary on comprehension, grammar and spelling. Respond ONLY with a JSON object in this exact shape, with no commentary before or after:
{
  "score": 3,
  "feedback": "Encouraging feedback written in French, two or three sentences.",
  "corrections": [
    {
      "original": "the student's phrase as written",
      "corrected": "the corrected phrase",
      "explanation": "short explanation in French of the mistake"
    }
  ]
}

The score is an integer from 1 (poor) to 5 (excellent). If the summary has no mistakes, return an empty corrections array. Write all feedback and explanations in French, addressed directly to the student.`

// pronunciationPrompt asks for conversational feedback on a read-aloud
// attempt, comparing a speech transcript against the target sentence.
const pronunciationPrompt = `You are a French pronunciation coach. A student read a sentence aloud and speech recognition produced a transcript.

Target sentence:
%s

What the student said (transcript):
%s

Compare the transcript with the target sentence. Point out words that were mispronounced or dropped, and give one or two concrete tips. Be brief and encouraging. Respond in French, in plain prose, no lists and no JSON.`
